package authz

import (
	"testing"

	"github.com/google/uuid"

	"github.com/o064/SWE-Back-End/internal/model"
)

func TestAllowsOwner(t *testing.T) {
	ownerID := uuid.New()
	course := &model.Course{InstructorID: ownerID}

	tests := []struct {
		name   string
		caller *model.User
		want   bool
	}{
		{"owner allowed", &model.User{ID: ownerID, Role: model.RoleInstructor}, true},
		{"other instructor denied", &model.User{ID: uuid.New(), Role: model.RoleInstructor}, false},
		{"admin does not bypass ownership", &model.User{ID: uuid.New(), Role: model.RoleAdmin}, false},
		{"nil caller denied", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Allows(tt.caller, course, Owner); got != tt.want {
				t.Errorf("Allows() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAllowsNilResource(t *testing.T) {
	caller := &model.User{ID: uuid.New()}
	if Allows(caller, nil, Owner) {
		t.Error("Allows() with nil resource should deny")
	}
}

func TestAllowsID(t *testing.T) {
	id := uuid.New()
	caller := &model.User{ID: id}

	if !AllowsID(caller, id, Self) {
		t.Error("AllowsID() should allow the caller on their own record")
	}
	if AllowsID(caller, uuid.New(), Self) {
		t.Error("AllowsID() should deny the caller on another user's record")
	}
}

func TestAllowsUnknownRelation(t *testing.T) {
	id := uuid.New()
	caller := &model.User{ID: id}
	if AllowsID(caller, id, Relation(99)) {
		t.Error("Allows() with unknown relation should deny")
	}
}
