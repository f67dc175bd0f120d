package services_test

import (
	"testing"

	"janji/internal/models"
	"janji/internal/repositories"
	"janji/internal/services"

	"github.com/stretchr/testify/assert"
)

func newAppointmentFixture(enforceOwnership bool) (*services.AppointmentService, repositories.UserRepository) {
	userRepo := repositories.NewMemoryUserRepository()
	apptRepo := repositories.NewMemoryAppointmentRepository()
	// nil events client: publishing is skipped.
	return services.NewAppointmentService(apptRepo, userRepo, nil, enforceOwnership), userRepo
}

func validAppointmentInput() services.AppointmentInput {
	return services.AppointmentInput{
		ServiceID: "svc-1",
		Date:      "2024-01-01",
		Time:      "10:00",
	}
}

func TestAppointmentService_Create(t *testing.T) {
	appointments, _ := newAppointmentFixture(false)

	created, err := appointments.Create("user-1", validAppointmentInput())
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "user-1", created.UserID)
	assert.Equal(t, "svc-1", created.ServiceID)
	assert.Equal(t, models.StatusScheduled, created.Status)
	assert.Equal(t, models.PaymentPending, created.PaymentStatus)
	assert.Equal(t, "", created.Notes)
	assert.Equal(t, "", created.CustomerName)

	// Supplied values win over the defaults.
	input := validAppointmentInput()
	input.Status = models.StatusCompleted
	input.PaymentStatus = models.PaymentPaid
	input.PaymentMethod = models.PaymentMethodCash
	input.CustomerName = "Bob"
	created, err = appointments.Create("user-1", input)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, created.Status)
	assert.Equal(t, models.PaymentPaid, created.PaymentStatus)
	assert.Equal(t, models.PaymentMethodCash, created.PaymentMethod)
	assert.Equal(t, "Bob", created.CustomerName)
}

func TestAppointmentService_CreateRequiresSessionUser(t *testing.T) {
	appointments, _ := newAppointmentFixture(false)

	_, err := appointments.Create("", validAppointmentInput())
	assert.ErrorIs(t, err, services.ErrUnauthorized)
}

func TestAppointmentService_CreateValidation(t *testing.T) {
	appointments, _ := newAppointmentFixture(false)
	var verr *services.ValidationError

	input := validAppointmentInput()
	input.Date = ""
	_, err := appointments.Create("user-1", input)
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "date", verr.Field)

	input = validAppointmentInput()
	input.Time = ""
	_, err = appointments.Create("user-1", input)
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "time", verr.Field)

	_, err = appointments.Create("user-1", services.AppointmentInput{})
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "serviceId", verr.Field)
}

func TestAppointmentService_GetByIDAttachesPaypalHandle(t *testing.T) {
	appointments, userRepo := newAppointmentFixture(false)

	owner := &models.User{Email: "alice@example.com", Password: "x"}
	assert.NoError(t, userRepo.Create(owner))

	created, err := appointments.Create(owner.ID, validAppointmentInput())
	assert.NoError(t, err)

	// No handle set yet: explicit null.
	detail, err := appointments.GetByID(created.ID)
	assert.NoError(t, err)
	assert.Nil(t, detail.PaypalHandle)

	owner.PaypalHandle = strPtr("alice-pays")
	assert.NoError(t, userRepo.Update(owner))

	detail, err = appointments.GetByID(created.ID)
	assert.NoError(t, err)
	assert.NotNil(t, detail.PaypalHandle)
	assert.Equal(t, "alice-pays", *detail.PaypalHandle)

	// An appointment whose owner is gone still reads fine, handle null.
	orphan, err := appointments.Create("deleted-user", validAppointmentInput())
	assert.NoError(t, err)
	detail, err = appointments.GetByID(orphan.ID)
	assert.NoError(t, err)
	assert.Nil(t, detail.PaypalHandle)

	_, err = appointments.GetByID("missing")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestAppointmentService_UpdateIsStrictReplace(t *testing.T) {
	appointments, _ := newAppointmentFixture(false)

	input := validAppointmentInput()
	input.Notes = "bring photos"
	input.Status = models.StatusCompleted
	created, err := appointments.Create("user-1", input)
	assert.NoError(t, err)

	// Date and time are required on update, unlike create's other fields.
	var verr *services.ValidationError
	_, err = appointments.Update(created.ID, "", services.AppointmentUpdate{Notes: "only notes"})
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "date", verr.Field)

	_, err = appointments.Update(created.ID, "", services.AppointmentUpdate{Date: "2024-02-02"})
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "time", verr.Field)

	// A minimal valid update resets the optional fields to the create
	// defaults and keeps the stored serviceId.
	updated, err := appointments.Update(created.ID, "", services.AppointmentUpdate{
		Date: "2024-02-02",
		Time: "11:30",
	})
	assert.NoError(t, err)
	assert.Equal(t, "2024-02-02", updated.Date)
	assert.Equal(t, "11:30", updated.Time)
	assert.Equal(t, "", updated.Notes)
	assert.Equal(t, models.StatusScheduled, updated.Status)
	assert.Equal(t, models.PaymentPending, updated.PaymentStatus)
	assert.Equal(t, "svc-1", updated.ServiceID)

	_, err = appointments.Update("missing", "", services.AppointmentUpdate{Date: "2024-02-02", Time: "11:30"})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestAppointmentService_DeleteIdempotent(t *testing.T) {
	appointments, _ := newAppointmentFixture(false)

	created, err := appointments.Create("user-1", validAppointmentInput())
	assert.NoError(t, err)

	assert.NoError(t, appointments.Delete(created.ID, ""))
	_, err = appointments.GetByID(created.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.NoError(t, appointments.Delete(created.ID, ""))
	assert.NoError(t, appointments.Delete("never-existed", ""))
}

func TestAppointmentService_OwnershipEnforcement(t *testing.T) {
	appointments, _ := newAppointmentFixture(true)

	created, err := appointments.Create("user-1", validAppointmentInput())
	assert.NoError(t, err)

	_, err = appointments.Update(created.ID, "intruder", services.AppointmentUpdate{Date: "2024-02-02", Time: "11:30"})
	assert.ErrorIs(t, err, services.ErrUnauthorized)
	err = appointments.Delete(created.ID, "intruder")
	assert.ErrorIs(t, err, services.ErrUnauthorized)

	_, err = appointments.Update(created.ID, "user-1", services.AppointmentUpdate{Date: "2024-02-02", Time: "11:30"})
	assert.NoError(t, err)
	assert.NoError(t, appointments.Delete(created.ID, "user-1"))
}

func TestAppointmentService_ListByOwner(t *testing.T) {
	appointments, _ := newAppointmentFixture(false)

	_, err := appointments.Create("user-1", validAppointmentInput())
	assert.NoError(t, err)
	_, err = appointments.Create("user-1", validAppointmentInput())
	assert.NoError(t, err)
	_, err = appointments.Create("user-2", validAppointmentInput())
	assert.NoError(t, err)

	list, err := appointments.ListByOwner("user-1")
	assert.NoError(t, err)
	assert.Len(t, list, 2)

	empty, err := appointments.ListByOwner("user-9")
	assert.NoError(t, err)
	assert.Empty(t, empty)
}
