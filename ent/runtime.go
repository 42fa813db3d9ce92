// Code generated by ent, DO NOT EDIT.

package ent

import (
	"CivicPulseAPI/ent/comment"
	"CivicPulseAPI/ent/department"
	"CivicPulseAPI/ent/report"
	"CivicPulseAPI/ent/schema"
	"CivicPulseAPI/ent/statusupdate"
	"CivicPulseAPI/ent/user"
	"CivicPulseAPI/ent/vote"
	"time"

	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	commentMixin := schema.Comment{}.Mixin()
	commentMixinFields0 := commentMixin[0].Fields()
	_ = commentMixinFields0
	commentFields := schema.Comment{}.Fields()
	_ = commentFields
	// commentDescCreatedAt is the schema descriptor for created_at field.
	commentDescCreatedAt := commentMixinFields0[0].Descriptor()
	// comment.DefaultCreatedAt holds the default value on creation for the created_at field.
	comment.DefaultCreatedAt = commentDescCreatedAt.Default.(func() time.Time)
	// commentDescUpdatedAt is the schema descriptor for updated_at field.
	commentDescUpdatedAt := commentMixinFields0[1].Descriptor()
	// comment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	comment.DefaultUpdatedAt = commentDescUpdatedAt.Default.(func() time.Time)
	// comment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	comment.UpdateDefaultUpdatedAt = commentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// commentDescMessage is the schema descriptor for message field.
	commentDescMessage := commentFields[3].Descriptor()
	// comment.MessageValidator is a validator for the "message" field. It is called by the builders before save.
	comment.MessageValidator = commentDescMessage.Validators[0].(func(string) error)
	// commentDescIsPublic is the schema descriptor for is_public field.
	commentDescIsPublic := commentFields[4].Descriptor()
	// comment.DefaultIsPublic holds the default value on creation for the is_public field.
	comment.DefaultIsPublic = commentDescIsPublic.Default.(bool)
	// commentDescID is the schema descriptor for id field.
	commentDescID := commentFields[0].Descriptor()
	// comment.DefaultID holds the default value on creation for the id field.
	comment.DefaultID = commentDescID.Default.(func() uuid.UUID)
	departmentMixin := schema.Department{}.Mixin()
	departmentMixinFields0 := departmentMixin[0].Fields()
	_ = departmentMixinFields0
	departmentFields := schema.Department{}.Fields()
	_ = departmentFields
	// departmentDescCreatedAt is the schema descriptor for created_at field.
	departmentDescCreatedAt := departmentMixinFields0[0].Descriptor()
	// department.DefaultCreatedAt holds the default value on creation for the created_at field.
	department.DefaultCreatedAt = departmentDescCreatedAt.Default.(func() time.Time)
	// departmentDescUpdatedAt is the schema descriptor for updated_at field.
	departmentDescUpdatedAt := departmentMixinFields0[1].Descriptor()
	// department.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	department.DefaultUpdatedAt = departmentDescUpdatedAt.Default.(func() time.Time)
	// department.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	department.UpdateDefaultUpdatedAt = departmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// departmentDescCode is the schema descriptor for code field.
	departmentDescCode := departmentFields[1].Descriptor()
	// department.CodeValidator is a validator for the "code" field. It is called by the builders before save.
	department.CodeValidator = func() func(string) error {
		validators := departmentDescCode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(code string) error {
			for _, fn := range fns {
				if err := fn(code); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// departmentDescName is the schema descriptor for name field.
	departmentDescName := departmentFields[2].Descriptor()
	// department.NameValidator is a validator for the "name" field. It is called by the builders before save.
	department.NameValidator = func() func(string) error {
		validators := departmentDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// departmentDescResponseHours is the schema descriptor for response_hours field.
	departmentDescResponseHours := departmentFields[5].Descriptor()
	// department.DefaultResponseHours holds the default value on creation for the response_hours field.
	department.DefaultResponseHours = departmentDescResponseHours.Default.(float64)
	// departmentDescResolutionHours is the schema descriptor for resolution_hours field.
	departmentDescResolutionHours := departmentFields[6].Descriptor()
	// department.DefaultResolutionHours holds the default value on creation for the resolution_hours field.
	department.DefaultResolutionHours = departmentDescResolutionHours.Default.(float64)
	// departmentDescEscalationThresholdHours is the schema descriptor for escalation_threshold_hours field.
	departmentDescEscalationThresholdHours := departmentFields[7].Descriptor()
	// department.DefaultEscalationThresholdHours holds the default value on creation for the escalation_threshold_hours field.
	department.DefaultEscalationThresholdHours = departmentDescEscalationThresholdHours.Default.(float64)
	// departmentDescIsActive is the schema descriptor for is_active field.
	departmentDescIsActive := departmentFields[8].Descriptor()
	// department.DefaultIsActive holds the default value on creation for the is_active field.
	department.DefaultIsActive = departmentDescIsActive.Default.(bool)
	// departmentDescID is the schema descriptor for id field.
	departmentDescID := departmentFields[0].Descriptor()
	// department.DefaultID holds the default value on creation for the id field.
	department.DefaultID = departmentDescID.Default.(func() uuid.UUID)
	reportMixin := schema.Report{}.Mixin()
	reportMixinFields0 := reportMixin[0].Fields()
	_ = reportMixinFields0
	reportFields := schema.Report{}.Fields()
	_ = reportFields
	// reportDescCreatedAt is the schema descriptor for created_at field.
	reportDescCreatedAt := reportMixinFields0[0].Descriptor()
	// report.DefaultCreatedAt holds the default value on creation for the created_at field.
	report.DefaultCreatedAt = reportDescCreatedAt.Default.(func() time.Time)
	// reportDescUpdatedAt is the schema descriptor for updated_at field.
	reportDescUpdatedAt := reportMixinFields0[1].Descriptor()
	// report.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	report.DefaultUpdatedAt = reportDescUpdatedAt.Default.(func() time.Time)
	// report.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	report.UpdateDefaultUpdatedAt = reportDescUpdatedAt.UpdateDefault.(func() time.Time)
	// reportDescReportNumber is the schema descriptor for report_number field.
	reportDescReportNumber := reportFields[1].Descriptor()
	// report.ReportNumberValidator is a validator for the "report_number" field. It is called by the builders before save.
	report.ReportNumberValidator = reportDescReportNumber.Validators[0].(func(string) error)
	// reportDescTitle is the schema descriptor for title field.
	reportDescTitle := reportFields[2].Descriptor()
	// report.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	report.TitleValidator = func() func(string) error {
		validators := reportDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// reportDescDescription is the schema descriptor for description field.
	reportDescDescription := reportFields[3].Descriptor()
	// report.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	report.DescriptionValidator = reportDescDescription.Validators[0].(func(string) error)
	// reportDescSubcategory is the schema descriptor for subcategory field.
	reportDescSubcategory := reportFields[5].Descriptor()
	// report.SubcategoryValidator is a validator for the "subcategory" field. It is called by the builders before save.
	report.SubcategoryValidator = reportDescSubcategory.Validators[0].(func(string) error)
	// reportDescAiPriorityScore is the schema descriptor for ai_priority_score field.
	reportDescAiPriorityScore := reportFields[7].Descriptor()
	// report.DefaultAiPriorityScore holds the default value on creation for the ai_priority_score field.
	report.DefaultAiPriorityScore = reportDescAiPriorityScore.Default.(float64)
	// report.AiPriorityScoreValidator is a validator for the "ai_priority_score" field. It is called by the builders before save.
	report.AiPriorityScoreValidator = func() func(float64) error {
		validators := reportDescAiPriorityScore.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(ai_priority_score float64) error {
			for _, fn := range fns {
				if err := fn(ai_priority_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// reportDescLongitude is the schema descriptor for longitude field.
	reportDescLongitude := reportFields[8].Descriptor()
	// report.LongitudeValidator is a validator for the "longitude" field. It is called by the builders before save.
	report.LongitudeValidator = func() func(float64) error {
		validators := reportDescLongitude.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(longitude float64) error {
			for _, fn := range fns {
				if err := fn(longitude); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// reportDescLatitude is the schema descriptor for latitude field.
	reportDescLatitude := reportFields[9].Descriptor()
	// report.LatitudeValidator is a validator for the "latitude" field. It is called by the builders before save.
	report.LatitudeValidator = func() func(float64) error {
		validators := reportDescLatitude.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(latitude float64) error {
			for _, fn := range fns {
				if err := fn(latitude); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// reportDescStreet is the schema descriptor for street field.
	reportDescStreet := reportFields[10].Descriptor()
	// report.StreetValidator is a validator for the "street" field. It is called by the builders before save.
	report.StreetValidator = reportDescStreet.Validators[0].(func(string) error)
	// reportDescCity is the schema descriptor for city field.
	reportDescCity := reportFields[11].Descriptor()
	// report.CityValidator is a validator for the "city" field. It is called by the builders before save.
	report.CityValidator = func() func(string) error {
		validators := reportDescCity.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(city string) error {
			for _, fn := range fns {
				if err := fn(city); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// reportDescState is the schema descriptor for state field.
	reportDescState := reportFields[12].Descriptor()
	// report.StateValidator is a validator for the "state" field. It is called by the builders before save.
	report.StateValidator = reportDescState.Validators[0].(func(string) error)
	// reportDescZipCode is the schema descriptor for zip_code field.
	reportDescZipCode := reportFields[13].Descriptor()
	// report.ZipCodeValidator is a validator for the "zip_code" field. It is called by the builders before save.
	report.ZipCodeValidator = reportDescZipCode.Validators[0].(func(string) error)
	// reportDescCountry is the schema descriptor for country field.
	reportDescCountry := reportFields[14].Descriptor()
	// report.DefaultCountry holds the default value on creation for the country field.
	report.DefaultCountry = reportDescCountry.Default.(string)
	// report.CountryValidator is a validator for the "country" field. It is called by the builders before save.
	report.CountryValidator = reportDescCountry.Validators[0].(func(string) error)
	// reportDescLandmark is the schema descriptor for landmark field.
	reportDescLandmark := reportFields[15].Descriptor()
	// report.LandmarkValidator is a validator for the "landmark" field. It is called by the builders before save.
	report.LandmarkValidator = reportDescLandmark.Validators[0].(func(string) error)
	// reportDescIsAnonymous is the schema descriptor for is_anonymous field.
	reportDescIsAnonymous := reportFields[19].Descriptor()
	// report.DefaultIsAnonymous holds the default value on creation for the is_anonymous field.
	report.DefaultIsAnonymous = reportDescIsAnonymous.Default.(bool)
	// reportDescIsPublic is the schema descriptor for is_public field.
	reportDescIsPublic := reportFields[20].Descriptor()
	// report.DefaultIsPublic holds the default value on creation for the is_public field.
	report.DefaultIsPublic = reportDescIsPublic.Default.(bool)
	// reportDescIsFeatured is the schema descriptor for is_featured field.
	reportDescIsFeatured := reportFields[21].Descriptor()
	// report.DefaultIsFeatured holds the default value on creation for the is_featured field.
	report.DefaultIsFeatured = reportDescIsFeatured.Default.(bool)
	// reportDescStatusChangedAt is the schema descriptor for status_changed_at field.
	reportDescStatusChangedAt := reportFields[23].Descriptor()
	// report.DefaultStatusChangedAt holds the default value on creation for the status_changed_at field.
	report.DefaultStatusChangedAt = reportDescStatusChangedAt.Default.(func() time.Time)
	// reportDescAssignedDepartmentCode is the schema descriptor for assigned_department_code field.
	reportDescAssignedDepartmentCode := reportFields[24].Descriptor()
	// report.AssignedDepartmentCodeValidator is a validator for the "assigned_department_code" field. It is called by the builders before save.
	report.AssignedDepartmentCodeValidator = reportDescAssignedDepartmentCode.Validators[0].(func(string) error)
	// reportDescIsValidated is the schema descriptor for is_validated field.
	reportDescIsValidated := reportFields[25].Descriptor()
	// report.DefaultIsValidated holds the default value on creation for the is_validated field.
	report.DefaultIsValidated = reportDescIsValidated.Default.(bool)
	// reportDescUpvotes is the schema descriptor for upvotes field.
	reportDescUpvotes := reportFields[29].Descriptor()
	// report.DefaultUpvotes holds the default value on creation for the upvotes field.
	report.DefaultUpvotes = reportDescUpvotes.Default.(int)
	// report.UpvotesValidator is a validator for the "upvotes" field. It is called by the builders before save.
	report.UpvotesValidator = reportDescUpvotes.Validators[0].(func(int) error)
	// reportDescDownvotes is the schema descriptor for downvotes field.
	reportDescDownvotes := reportFields[30].Descriptor()
	// report.DefaultDownvotes holds the default value on creation for the downvotes field.
	report.DefaultDownvotes = reportDescDownvotes.Default.(int)
	// report.DownvotesValidator is a validator for the "downvotes" field. It is called by the builders before save.
	report.DownvotesValidator = reportDescDownvotes.Validators[0].(func(int) error)
	// reportDescTotalVotes is the schema descriptor for total_votes field.
	reportDescTotalVotes := reportFields[31].Descriptor()
	// report.DefaultTotalVotes holds the default value on creation for the total_votes field.
	report.DefaultTotalVotes = reportDescTotalVotes.Default.(int)
	// report.TotalVotesValidator is a validator for the "total_votes" field. It is called by the builders before save.
	report.TotalVotesValidator = reportDescTotalVotes.Validators[0].(func(int) error)
	// reportDescViews is the schema descriptor for views field.
	reportDescViews := reportFields[32].Descriptor()
	// report.DefaultViews holds the default value on creation for the views field.
	report.DefaultViews = reportDescViews.Default.(int)
	// reportDescShares is the schema descriptor for shares field.
	reportDescShares := reportFields[33].Descriptor()
	// report.DefaultShares holds the default value on creation for the shares field.
	report.DefaultShares = reportDescShares.Default.(int)
	// reportDescIsOverdue is the schema descriptor for is_overdue field.
	reportDescIsOverdue := reportFields[36].Descriptor()
	// report.DefaultIsOverdue holds the default value on creation for the is_overdue field.
	report.DefaultIsOverdue = reportDescIsOverdue.Default.(bool)
	// reportDescEscalationLevel is the schema descriptor for escalation_level field.
	reportDescEscalationLevel := reportFields[37].Descriptor()
	// report.DefaultEscalationLevel holds the default value on creation for the escalation_level field.
	report.DefaultEscalationLevel = reportDescEscalationLevel.Default.(int)
	// report.EscalationLevelValidator is a validator for the "escalation_level" field. It is called by the builders before save.
	report.EscalationLevelValidator = reportDescEscalationLevel.Validators[0].(func(int) error)
	// reportDescSatisfactionRating is the schema descriptor for satisfaction_rating field.
	reportDescSatisfactionRating := reportFields[42].Descriptor()
	// report.SatisfactionRatingValidator is a validator for the "satisfaction_rating" field. It is called by the builders before save.
	report.SatisfactionRatingValidator = func() func(int) error {
		validators := reportDescSatisfactionRating.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(satisfaction_rating int) error {
			for _, fn := range fns {
				if err := fn(satisfaction_rating); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// reportDescID is the schema descriptor for id field.
	reportDescID := reportFields[0].Descriptor()
	// report.DefaultID holds the default value on creation for the id field.
	report.DefaultID = reportDescID.Default.(func() uuid.UUID)
	statusupdateFields := schema.StatusUpdate{}.Fields()
	_ = statusupdateFields
	// statusupdateDescIsPublic is the schema descriptor for is_public field.
	statusupdateDescIsPublic := statusupdateFields[5].Descriptor()
	// statusupdate.DefaultIsPublic holds the default value on creation for the is_public field.
	statusupdate.DefaultIsPublic = statusupdateDescIsPublic.Default.(bool)
	// statusupdateDescCreatedAt is the schema descriptor for created_at field.
	statusupdateDescCreatedAt := statusupdateFields[6].Descriptor()
	// statusupdate.DefaultCreatedAt holds the default value on creation for the created_at field.
	statusupdate.DefaultCreatedAt = statusupdateDescCreatedAt.Default.(func() time.Time)
	// statusupdateDescID is the schema descriptor for id field.
	statusupdateDescID := statusupdateFields[0].Descriptor()
	// statusupdate.DefaultID holds the default value on creation for the id field.
	statusupdate.DefaultID = statusupdateDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields0[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields0[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescFullName is the schema descriptor for full_name field.
	userDescFullName := userFields[2].Descriptor()
	// user.FullNameValidator is a validator for the "full_name" field. It is called by the builders before save.
	user.FullNameValidator = userDescFullName.Validators[0].(func(string) error)
	// userDescDepartmentCode is the schema descriptor for department_code field.
	userDescDepartmentCode := userFields[4].Descriptor()
	// user.DepartmentCodeValidator is a validator for the "department_code" field. It is called by the builders before save.
	user.DepartmentCodeValidator = userDescDepartmentCode.Validators[0].(func(string) error)
	// userDescTrustScore is the schema descriptor for trust_score field.
	userDescTrustScore := userFields[5].Descriptor()
	// user.DefaultTrustScore holds the default value on creation for the trust_score field.
	user.DefaultTrustScore = userDescTrustScore.Default.(int)
	// userDescPoints is the schema descriptor for points field.
	userDescPoints := userFields[6].Descriptor()
	// user.DefaultPoints holds the default value on creation for the points field.
	user.DefaultPoints = userDescPoints.Default.(int)
	// user.PointsValidator is a validator for the "points" field. It is called by the builders before save.
	user.PointsValidator = userDescPoints.Validators[0].(func(int) error)
	// userDescLevel is the schema descriptor for level field.
	userDescLevel := userFields[7].Descriptor()
	// user.DefaultLevel holds the default value on creation for the level field.
	user.DefaultLevel = userDescLevel.Default.(int)
	// user.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	user.LevelValidator = userDescLevel.Validators[0].(func(int) error)
	// userDescStreak is the schema descriptor for streak field.
	userDescStreak := userFields[9].Descriptor()
	// user.DefaultStreak holds the default value on creation for the streak field.
	user.DefaultStreak = userDescStreak.Default.(int)
	// user.StreakValidator is a validator for the "streak" field. It is called by the builders before save.
	user.StreakValidator = userDescStreak.Validators[0].(func(int) error)
	// userDescReportsSubmitted is the schema descriptor for reports_submitted field.
	userDescReportsSubmitted := userFields[11].Descriptor()
	// user.DefaultReportsSubmitted holds the default value on creation for the reports_submitted field.
	user.DefaultReportsSubmitted = userDescReportsSubmitted.Default.(int)
	// user.ReportsSubmittedValidator is a validator for the "reports_submitted" field. It is called by the builders before save.
	user.ReportsSubmittedValidator = userDescReportsSubmitted.Validators[0].(func(int) error)
	// userDescIsActive is the schema descriptor for is_active field.
	userDescIsActive := userFields[12].Descriptor()
	// user.DefaultIsActive holds the default value on creation for the is_active field.
	user.DefaultIsActive = userDescIsActive.Default.(bool)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
	voteMixin := schema.Vote{}.Mixin()
	voteMixinFields0 := voteMixin[0].Fields()
	_ = voteMixinFields0
	voteFields := schema.Vote{}.Fields()
	_ = voteFields
	// voteDescCreatedAt is the schema descriptor for created_at field.
	voteDescCreatedAt := voteMixinFields0[0].Descriptor()
	// vote.DefaultCreatedAt holds the default value on creation for the created_at field.
	vote.DefaultCreatedAt = voteDescCreatedAt.Default.(func() time.Time)
	// voteDescUpdatedAt is the schema descriptor for updated_at field.
	voteDescUpdatedAt := voteMixinFields0[1].Descriptor()
	// vote.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	vote.DefaultUpdatedAt = voteDescUpdatedAt.Default.(func() time.Time)
	// vote.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	vote.UpdateDefaultUpdatedAt = voteDescUpdatedAt.UpdateDefault.(func() time.Time)
	// voteDescReason is the schema descriptor for reason field.
	voteDescReason := voteFields[4].Descriptor()
	// vote.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	vote.ReasonValidator = voteDescReason.Validators[0].(func(string) error)
	// voteDescID is the schema descriptor for id field.
	voteDescID := voteFields[0].Descriptor()
	// vote.DefaultID holds the default value on creation for the id field.
	vote.DefaultID = voteDescID.Default.(func() uuid.UUID)
}
