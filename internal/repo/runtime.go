// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/intakeai/intakeai_backend/internal/clinical"
	"github.com/intakeai/intakeai_backend/internal/repo/appointment"
	"github.com/intakeai/intakeai_backend/internal/repo/intake"
	"github.com/intakeai/intakeai_backend/internal/repo/intakelink"
	"github.com/intakeai/intakeai_backend/internal/repo/patient"
	"github.com/intakeai/intakeai_backend/internal/repo/refreshtoken"
	"github.com/intakeai/intakeai_backend/internal/repo/summary"
	"github.com/intakeai/intakeai_backend/internal/repo/user"
	"github.com/intakeai/intakeai_backend/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	appointmentMixin := schema.Appointment{}.Mixin()
	appointmentMixinFields0 := appointmentMixin[0].Fields()
	_ = appointmentMixinFields0
	appointmentMixinFields1 := appointmentMixin[1].Fields()
	_ = appointmentMixinFields1
	appointmentFields := schema.Appointment{}.Fields()
	_ = appointmentFields
	// appointmentDescCreatedAt is the schema descriptor for created_at field.
	appointmentDescCreatedAt := appointmentMixinFields1[0].Descriptor()
	// appointment.DefaultCreatedAt holds the default value on creation for the created_at field.
	appointment.DefaultCreatedAt = appointmentDescCreatedAt.Default.(func() time.Time)
	// appointmentDescUpdatedAt is the schema descriptor for updated_at field.
	appointmentDescUpdatedAt := appointmentMixinFields1[1].Descriptor()
	// appointment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	appointment.DefaultUpdatedAt = appointmentDescUpdatedAt.Default.(func() time.Time)
	// appointment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	appointment.UpdateDefaultUpdatedAt = appointmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// appointmentDescDurationMinutes is the schema descriptor for duration_minutes field.
	appointmentDescDurationMinutes := appointmentFields[2].Descriptor()
	// appointment.DefaultDurationMinutes holds the default value on creation for the duration_minutes field.
	appointment.DefaultDurationMinutes = appointmentDescDurationMinutes.Default.(int)
	// appointment.DurationMinutesValidator is a validator for the "duration_minutes" field. It is called by the builders before save.
	appointment.DurationMinutesValidator = appointmentDescDurationMinutes.Validators[0].(func(int) error)
	// appointmentDescReason is the schema descriptor for reason field.
	appointmentDescReason := appointmentFields[3].Descriptor()
	// appointment.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	appointment.ReasonValidator = appointmentDescReason.Validators[0].(func(string) error)
	// appointmentDescID is the schema descriptor for id field.
	appointmentDescID := appointmentMixinFields0[0].Descriptor()
	// appointment.DefaultID holds the default value on creation for the id field.
	appointment.DefaultID = appointmentDescID.Default.(func() uuid.UUID)
	intakeMixin := schema.Intake{}.Mixin()
	intakeMixinFields0 := intakeMixin[0].Fields()
	_ = intakeMixinFields0
	intakeMixinFields1 := intakeMixin[1].Fields()
	_ = intakeMixinFields1
	intakeFields := schema.Intake{}.Fields()
	_ = intakeFields
	// intakeDescCreatedAt is the schema descriptor for created_at field.
	intakeDescCreatedAt := intakeMixinFields1[0].Descriptor()
	// intake.DefaultCreatedAt holds the default value on creation for the created_at field.
	intake.DefaultCreatedAt = intakeDescCreatedAt.Default.(func() time.Time)
	// intakeDescUpdatedAt is the schema descriptor for updated_at field.
	intakeDescUpdatedAt := intakeMixinFields1[1].Descriptor()
	// intake.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	intake.DefaultUpdatedAt = intakeDescUpdatedAt.Default.(func() time.Time)
	// intake.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	intake.UpdateDefaultUpdatedAt = intakeDescUpdatedAt.UpdateDefault.(func() time.Time)
	// intakeDescID is the schema descriptor for id field.
	intakeDescID := intakeMixinFields0[0].Descriptor()
	// intake.DefaultID holds the default value on creation for the id field.
	intake.DefaultID = intakeDescID.Default.(func() uuid.UUID)
	intakelinkMixin := schema.IntakeLink{}.Mixin()
	intakelinkMixinFields0 := intakelinkMixin[0].Fields()
	_ = intakelinkMixinFields0
	intakelinkMixinFields1 := intakelinkMixin[1].Fields()
	_ = intakelinkMixinFields1
	intakelinkFields := schema.IntakeLink{}.Fields()
	_ = intakelinkFields
	// intakelinkDescCreatedAt is the schema descriptor for created_at field.
	intakelinkDescCreatedAt := intakelinkMixinFields1[0].Descriptor()
	// intakelink.DefaultCreatedAt holds the default value on creation for the created_at field.
	intakelink.DefaultCreatedAt = intakelinkDescCreatedAt.Default.(func() time.Time)
	// intakelinkDescToken is the schema descriptor for token field.
	intakelinkDescToken := intakelinkFields[1].Descriptor()
	// intakelink.TokenValidator is a validator for the "token" field. It is called by the builders before save.
	intakelink.TokenValidator = func() func(string) error {
		validators := intakelinkDescToken.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(token string) error {
			for _, fn := range fns {
				if err := fn(token); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// intakelinkDescIsUsed is the schema descriptor for is_used field.
	intakelinkDescIsUsed := intakelinkFields[3].Descriptor()
	// intakelink.DefaultIsUsed holds the default value on creation for the is_used field.
	intakelink.DefaultIsUsed = intakelinkDescIsUsed.Default.(bool)
	// intakelinkDescID is the schema descriptor for id field.
	intakelinkDescID := intakelinkMixinFields0[0].Descriptor()
	// intakelink.DefaultID holds the default value on creation for the id field.
	intakelink.DefaultID = intakelinkDescID.Default.(func() uuid.UUID)
	patientMixin := schema.Patient{}.Mixin()
	patientMixinFields0 := patientMixin[0].Fields()
	_ = patientMixinFields0
	patientMixinFields1 := patientMixin[1].Fields()
	_ = patientMixinFields1
	patientFields := schema.Patient{}.Fields()
	_ = patientFields
	// patientDescCreatedAt is the schema descriptor for created_at field.
	patientDescCreatedAt := patientMixinFields1[0].Descriptor()
	// patient.DefaultCreatedAt holds the default value on creation for the created_at field.
	patient.DefaultCreatedAt = patientDescCreatedAt.Default.(func() time.Time)
	// patientDescUpdatedAt is the schema descriptor for updated_at field.
	patientDescUpdatedAt := patientMixinFields1[1].Descriptor()
	// patient.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	patient.DefaultUpdatedAt = patientDescUpdatedAt.Default.(func() time.Time)
	// patient.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	patient.UpdateDefaultUpdatedAt = patientDescUpdatedAt.UpdateDefault.(func() time.Time)
	// patientDescFirstName is the schema descriptor for first_name field.
	patientDescFirstName := patientFields[1].Descriptor()
	// patient.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	patient.FirstNameValidator = patientDescFirstName.Validators[0].(func(string) error)
	// patientDescLastName is the schema descriptor for last_name field.
	patientDescLastName := patientFields[2].Descriptor()
	// patient.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	patient.LastNameValidator = patientDescLastName.Validators[0].(func(string) error)
	// patientDescEmail is the schema descriptor for email field.
	patientDescEmail := patientFields[3].Descriptor()
	// patient.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	patient.EmailValidator = patientDescEmail.Validators[0].(func(string) error)
	// patientDescPhone is the schema descriptor for phone field.
	patientDescPhone := patientFields[4].Descriptor()
	// patient.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	patient.PhoneValidator = patientDescPhone.Validators[0].(func(string) error)
	// patientDescID is the schema descriptor for id field.
	patientDescID := patientMixinFields0[0].Descriptor()
	// patient.DefaultID holds the default value on creation for the id field.
	patient.DefaultID = patientDescID.Default.(func() uuid.UUID)
	refreshtokenMixin := schema.RefreshToken{}.Mixin()
	refreshtokenMixinFields0 := refreshtokenMixin[0].Fields()
	_ = refreshtokenMixinFields0
	refreshtokenMixinFields1 := refreshtokenMixin[1].Fields()
	_ = refreshtokenMixinFields1
	refreshtokenFields := schema.RefreshToken{}.Fields()
	_ = refreshtokenFields
	// refreshtokenDescCreatedAt is the schema descriptor for created_at field.
	refreshtokenDescCreatedAt := refreshtokenMixinFields1[0].Descriptor()
	// refreshtoken.DefaultCreatedAt holds the default value on creation for the created_at field.
	refreshtoken.DefaultCreatedAt = refreshtokenDescCreatedAt.Default.(func() time.Time)
	// refreshtokenDescSessionID is the schema descriptor for session_id field.
	refreshtokenDescSessionID := refreshtokenFields[1].Descriptor()
	// refreshtoken.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	refreshtoken.SessionIDValidator = refreshtokenDescSessionID.Validators[0].(func(string) error)
	// refreshtokenDescTokenHash is the schema descriptor for token_hash field.
	refreshtokenDescTokenHash := refreshtokenFields[2].Descriptor()
	// refreshtoken.TokenHashValidator is a validator for the "token_hash" field. It is called by the builders before save.
	refreshtoken.TokenHashValidator = refreshtokenDescTokenHash.Validators[0].(func(string) error)
	// refreshtokenDescID is the schema descriptor for id field.
	refreshtokenDescID := refreshtokenMixinFields0[0].Descriptor()
	// refreshtoken.DefaultID holds the default value on creation for the id field.
	refreshtoken.DefaultID = refreshtokenDescID.Default.(func() uuid.UUID)
	summaryMixin := schema.Summary{}.Mixin()
	summaryMixinFields0 := summaryMixin[0].Fields()
	_ = summaryMixinFields0
	summaryMixinFields1 := summaryMixin[1].Fields()
	_ = summaryMixinFields1
	summaryFields := schema.Summary{}.Fields()
	_ = summaryFields
	// summaryDescCreatedAt is the schema descriptor for created_at field.
	summaryDescCreatedAt := summaryMixinFields1[0].Descriptor()
	// summary.DefaultCreatedAt holds the default value on creation for the created_at field.
	summary.DefaultCreatedAt = summaryDescCreatedAt.Default.(func() time.Time)
	// summaryDescUpdatedAt is the schema descriptor for updated_at field.
	summaryDescUpdatedAt := summaryMixinFields1[1].Descriptor()
	// summary.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	summary.DefaultUpdatedAt = summaryDescUpdatedAt.Default.(func() time.Time)
	// summary.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	summary.UpdateDefaultUpdatedAt = summaryDescUpdatedAt.UpdateDefault.(func() time.Time)
	// summaryDescMedications is the schema descriptor for medications field.
	summaryDescMedications := summaryFields[2].Descriptor()
	// summary.DefaultMedications holds the default value on creation for the medications field.
	summary.DefaultMedications = summaryDescMedications.Default.([]clinical.Medication)
	// summaryDescRedFlags is the schema descriptor for red_flags field.
	summaryDescRedFlags := summaryFields[6].Descriptor()
	// summary.DefaultRedFlags holds the default value on creation for the red_flags field.
	summary.DefaultRedFlags = summaryDescRedFlags.Default.([]clinical.RedFlag)
	// summaryDescHasRedFlags is the schema descriptor for has_red_flags field.
	summaryDescHasRedFlags := summaryFields[7].Descriptor()
	// summary.DefaultHasRedFlags holds the default value on creation for the has_red_flags field.
	summary.DefaultHasRedFlags = summaryDescHasRedFlags.Default.(bool)
	// summaryDescRedFlagCount is the schema descriptor for red_flag_count field.
	summaryDescRedFlagCount := summaryFields[8].Descriptor()
	// summary.DefaultRedFlagCount holds the default value on creation for the red_flag_count field.
	summary.DefaultRedFlagCount = summaryDescRedFlagCount.Default.(int)
	// summary.RedFlagCountValidator is a validator for the "red_flag_count" field. It is called by the builders before save.
	summary.RedFlagCountValidator = summaryDescRedFlagCount.Validators[0].(func(int) error)
	// summaryDescID is the schema descriptor for id field.
	summaryDescID := summaryMixinFields0[0].Descriptor()
	// summary.DefaultID holds the default value on creation for the id field.
	summary.DefaultID = summaryDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[0].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescFirstName is the schema descriptor for first_name field.
	userDescFirstName := userFields[2].Descriptor()
	// user.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	user.FirstNameValidator = userDescFirstName.Validators[0].(func(string) error)
	// userDescLastName is the schema descriptor for last_name field.
	userDescLastName := userFields[3].Descriptor()
	// user.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	user.LastNameValidator = userDescLastName.Validators[0].(func(string) error)
	// userDescPracticeName is the schema descriptor for practice_name field.
	userDescPracticeName := userFields[4].Descriptor()
	// user.PracticeNameValidator is a validator for the "practice_name" field. It is called by the builders before save.
	user.PracticeNameValidator = userDescPracticeName.Validators[0].(func(string) error)
	// userDescTitle is the schema descriptor for title field.
	userDescTitle := userFields[5].Descriptor()
	// user.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	user.TitleValidator = userDescTitle.Validators[0].(func(string) error)
	// userDescFailedLoginAttempts is the schema descriptor for failed_login_attempts field.
	userDescFailedLoginAttempts := userFields[7].Descriptor()
	// user.DefaultFailedLoginAttempts holds the default value on creation for the failed_login_attempts field.
	user.DefaultFailedLoginAttempts = userDescFailedLoginAttempts.Default.(int)
	// user.FailedLoginAttemptsValidator is a validator for the "failed_login_attempts" field. It is called by the builders before save.
	user.FailedLoginAttemptsValidator = userDescFailedLoginAttempts.Validators[0].(func(int) error)
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
