// file: internals/helpers/auth/actor_context.go
package helperAuth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"kampusku_backend/internals/constants"
)

// Kunci Locals yang dihidrasi oleh middleware AuthJWT
const (
	LocUserID     = "user_id"
	LocStudentID  = "student_id"
	LocLecturerID = "lecturer_id"
	LocRole       = "role"
)

/*
ActorContext adalah identitas eksplisit untuk setiap operasi inti.
Controller membangun ini sekali dari Locals lalu meneruskannya sebagai argumen —
engine tidak pernah membaca state ambient sendiri, jadi gampang dites tanpa HTTP.
*/
type ActorContext struct {
	UserID     uuid.UUID
	StudentID  uuid.UUID
	LecturerID uuid.UUID
	Role       string
}

func (a ActorContext) IsStudent() bool  { return a.Role == constants.RoleStudent && a.StudentID != uuid.Nil }
func (a ActorContext) IsLecturer() bool { return a.Role == constants.RoleLecturer && a.LecturerID != uuid.Nil }
func (a ActorContext) IsAdmin() bool {
	return a.Role == constants.RoleAdmin || a.Role == constants.RoleOwner
}

func localUUID(c *fiber.Ctx, key string) uuid.UUID {
	v := c.Locals(key)
	if v == nil {
		return uuid.Nil
	}
	s, ok := v.(string)
	if !ok {
		return uuid.Nil
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil
	}
	return id
}

// ResolveActor membaca identitas dari Locals hasil middleware JWT.
func ResolveActor(c *fiber.Ctx) (ActorContext, error) {
	actor := ActorContext{
		UserID:     localUUID(c, LocUserID),
		StudentID:  localUUID(c, LocStudentID),
		LecturerID: localUUID(c, LocLecturerID),
	}
	if role, ok := c.Locals(LocRole).(string); ok {
		actor.Role = strings.ToLower(strings.TrimSpace(role))
	}
	if actor.UserID == uuid.Nil {
		return actor, fiber.NewError(fiber.StatusUnauthorized, "user_id tidak ditemukan di token")
	}
	return actor, nil
}

// RequireStudent memastikan caller adalah mahasiswa dan mengembalikan student_id-nya.
func RequireStudent(c *fiber.Ctx) (ActorContext, error) {
	actor, err := ResolveActor(c)
	if err != nil {
		return actor, err
	}
	if !actor.IsStudent() {
		return actor, fiber.NewError(fiber.StatusForbidden, constants.RoleErrorStudent("ini"))
	}
	return actor, nil
}

// RequireLecturer memastikan caller dosen/admin/owner.
func RequireLecturer(c *fiber.Ctx) (ActorContext, error) {
	actor, err := ResolveActor(c)
	if err != nil {
		return actor, err
	}
	if !actor.IsLecturer() && !actor.IsAdmin() {
		return actor, fiber.NewError(fiber.StatusForbidden, constants.RoleErrorLecturer("ini"))
	}
	return actor, nil
}

// RequireAdmin memastikan caller admin/owner.
func RequireAdmin(c *fiber.Ctx) (ActorContext, error) {
	actor, err := ResolveActor(c)
	if err != nil {
		return actor, err
	}
	if !actor.IsAdmin() {
		return actor, fiber.NewError(fiber.StatusForbidden, constants.RoleErrorAdmin("ini"))
	}
	return actor, nil
}
