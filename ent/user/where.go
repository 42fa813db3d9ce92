// Code generated by ent, DO NOT EDIT.

package user

import (
	"CivicPulseAPI/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.User {
	return predicate.User(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.User {
	return predicate.User(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.User {
	return predicate.User(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.User {
	return predicate.User(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.User {
	return predicate.User(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldUpdatedAt, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmail, v))
}

// FullName applies equality check predicate on the "full_name" field. It's identical to FullNameEQ.
func FullName(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldFullName, v))
}

// DepartmentCode applies equality check predicate on the "department_code" field. It's identical to DepartmentCodeEQ.
func DepartmentCode(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldDepartmentCode, v))
}

// TrustScore applies equality check predicate on the "trust_score" field. It's identical to TrustScoreEQ.
func TrustScore(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldTrustScore, v))
}

// Points applies equality check predicate on the "points" field. It's identical to PointsEQ.
func Points(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldPoints, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLevel, v))
}

// Streak applies equality check predicate on the "streak" field. It's identical to StreakEQ.
func Streak(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldStreak, v))
}

// LastReportDate applies equality check predicate on the "last_report_date" field. It's identical to LastReportDateEQ.
func LastReportDate(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLastReportDate, v))
}

// ReportsSubmitted applies equality check predicate on the "reports_submitted" field. It's identical to ReportsSubmittedEQ.
func ReportsSubmitted(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldReportsSubmitted, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.User {
	return predicate.User(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldUpdatedAt, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldEmail, v))
}

// FullNameEQ applies the EQ predicate on the "full_name" field.
func FullNameEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldFullName, v))
}

// FullNameNEQ applies the NEQ predicate on the "full_name" field.
func FullNameNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldFullName, v))
}

// FullNameIn applies the In predicate on the "full_name" field.
func FullNameIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldFullName, vs...))
}

// FullNameNotIn applies the NotIn predicate on the "full_name" field.
func FullNameNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldFullName, vs...))
}

// FullNameGT applies the GT predicate on the "full_name" field.
func FullNameGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldFullName, v))
}

// FullNameGTE applies the GTE predicate on the "full_name" field.
func FullNameGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldFullName, v))
}

// FullNameLT applies the LT predicate on the "full_name" field.
func FullNameLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldFullName, v))
}

// FullNameLTE applies the LTE predicate on the "full_name" field.
func FullNameLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldFullName, v))
}

// FullNameContains applies the Contains predicate on the "full_name" field.
func FullNameContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldFullName, v))
}

// FullNameHasPrefix applies the HasPrefix predicate on the "full_name" field.
func FullNameHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldFullName, v))
}

// FullNameHasSuffix applies the HasSuffix predicate on the "full_name" field.
func FullNameHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldFullName, v))
}

// FullNameIsNil applies the IsNil predicate on the "full_name" field.
func FullNameIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldFullName))
}

// FullNameNotNil applies the NotNil predicate on the "full_name" field.
func FullNameNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldFullName))
}

// FullNameEqualFold applies the EqualFold predicate on the "full_name" field.
func FullNameEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldFullName, v))
}

// FullNameContainsFold applies the ContainsFold predicate on the "full_name" field.
func FullNameContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldFullName, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v Role) predicate.User {
	return predicate.User(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v Role) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...Role) predicate.User {
	return predicate.User(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...Role) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldRole, vs...))
}

// DepartmentCodeEQ applies the EQ predicate on the "department_code" field.
func DepartmentCodeEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldDepartmentCode, v))
}

// DepartmentCodeNEQ applies the NEQ predicate on the "department_code" field.
func DepartmentCodeNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldDepartmentCode, v))
}

// DepartmentCodeIn applies the In predicate on the "department_code" field.
func DepartmentCodeIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldDepartmentCode, vs...))
}

// DepartmentCodeNotIn applies the NotIn predicate on the "department_code" field.
func DepartmentCodeNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldDepartmentCode, vs...))
}

// DepartmentCodeGT applies the GT predicate on the "department_code" field.
func DepartmentCodeGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldDepartmentCode, v))
}

// DepartmentCodeGTE applies the GTE predicate on the "department_code" field.
func DepartmentCodeGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldDepartmentCode, v))
}

// DepartmentCodeLT applies the LT predicate on the "department_code" field.
func DepartmentCodeLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldDepartmentCode, v))
}

// DepartmentCodeLTE applies the LTE predicate on the "department_code" field.
func DepartmentCodeLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldDepartmentCode, v))
}

// DepartmentCodeContains applies the Contains predicate on the "department_code" field.
func DepartmentCodeContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldDepartmentCode, v))
}

// DepartmentCodeHasPrefix applies the HasPrefix predicate on the "department_code" field.
func DepartmentCodeHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldDepartmentCode, v))
}

// DepartmentCodeHasSuffix applies the HasSuffix predicate on the "department_code" field.
func DepartmentCodeHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldDepartmentCode, v))
}

// DepartmentCodeIsNil applies the IsNil predicate on the "department_code" field.
func DepartmentCodeIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldDepartmentCode))
}

// DepartmentCodeNotNil applies the NotNil predicate on the "department_code" field.
func DepartmentCodeNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldDepartmentCode))
}

// DepartmentCodeEqualFold applies the EqualFold predicate on the "department_code" field.
func DepartmentCodeEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldDepartmentCode, v))
}

// DepartmentCodeContainsFold applies the ContainsFold predicate on the "department_code" field.
func DepartmentCodeContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldDepartmentCode, v))
}

// TrustScoreEQ applies the EQ predicate on the "trust_score" field.
func TrustScoreEQ(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldTrustScore, v))
}

// TrustScoreNEQ applies the NEQ predicate on the "trust_score" field.
func TrustScoreNEQ(v int) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldTrustScore, v))
}

// TrustScoreIn applies the In predicate on the "trust_score" field.
func TrustScoreIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldIn(FieldTrustScore, vs...))
}

// TrustScoreNotIn applies the NotIn predicate on the "trust_score" field.
func TrustScoreNotIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldTrustScore, vs...))
}

// TrustScoreGT applies the GT predicate on the "trust_score" field.
func TrustScoreGT(v int) predicate.User {
	return predicate.User(sql.FieldGT(FieldTrustScore, v))
}

// TrustScoreGTE applies the GTE predicate on the "trust_score" field.
func TrustScoreGTE(v int) predicate.User {
	return predicate.User(sql.FieldGTE(FieldTrustScore, v))
}

// TrustScoreLT applies the LT predicate on the "trust_score" field.
func TrustScoreLT(v int) predicate.User {
	return predicate.User(sql.FieldLT(FieldTrustScore, v))
}

// TrustScoreLTE applies the LTE predicate on the "trust_score" field.
func TrustScoreLTE(v int) predicate.User {
	return predicate.User(sql.FieldLTE(FieldTrustScore, v))
}

// PointsEQ applies the EQ predicate on the "points" field.
func PointsEQ(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldPoints, v))
}

// PointsNEQ applies the NEQ predicate on the "points" field.
func PointsNEQ(v int) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldPoints, v))
}

// PointsIn applies the In predicate on the "points" field.
func PointsIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldIn(FieldPoints, vs...))
}

// PointsNotIn applies the NotIn predicate on the "points" field.
func PointsNotIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldPoints, vs...))
}

// PointsGT applies the GT predicate on the "points" field.
func PointsGT(v int) predicate.User {
	return predicate.User(sql.FieldGT(FieldPoints, v))
}

// PointsGTE applies the GTE predicate on the "points" field.
func PointsGTE(v int) predicate.User {
	return predicate.User(sql.FieldGTE(FieldPoints, v))
}

// PointsLT applies the LT predicate on the "points" field.
func PointsLT(v int) predicate.User {
	return predicate.User(sql.FieldLT(FieldPoints, v))
}

// PointsLTE applies the LTE predicate on the "points" field.
func PointsLTE(v int) predicate.User {
	return predicate.User(sql.FieldLTE(FieldPoints, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v int) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v int) predicate.User {
	return predicate.User(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v int) predicate.User {
	return predicate.User(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v int) predicate.User {
	return predicate.User(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v int) predicate.User {
	return predicate.User(sql.FieldLTE(FieldLevel, v))
}

// BadgesIsNil applies the IsNil predicate on the "badges" field.
func BadgesIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldBadges))
}

// BadgesNotNil applies the NotNil predicate on the "badges" field.
func BadgesNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldBadges))
}

// StreakEQ applies the EQ predicate on the "streak" field.
func StreakEQ(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldStreak, v))
}

// StreakNEQ applies the NEQ predicate on the "streak" field.
func StreakNEQ(v int) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldStreak, v))
}

// StreakIn applies the In predicate on the "streak" field.
func StreakIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldIn(FieldStreak, vs...))
}

// StreakNotIn applies the NotIn predicate on the "streak" field.
func StreakNotIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldStreak, vs...))
}

// StreakGT applies the GT predicate on the "streak" field.
func StreakGT(v int) predicate.User {
	return predicate.User(sql.FieldGT(FieldStreak, v))
}

// StreakGTE applies the GTE predicate on the "streak" field.
func StreakGTE(v int) predicate.User {
	return predicate.User(sql.FieldGTE(FieldStreak, v))
}

// StreakLT applies the LT predicate on the "streak" field.
func StreakLT(v int) predicate.User {
	return predicate.User(sql.FieldLT(FieldStreak, v))
}

// StreakLTE applies the LTE predicate on the "streak" field.
func StreakLTE(v int) predicate.User {
	return predicate.User(sql.FieldLTE(FieldStreak, v))
}

// LastReportDateEQ applies the EQ predicate on the "last_report_date" field.
func LastReportDateEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLastReportDate, v))
}

// LastReportDateNEQ applies the NEQ predicate on the "last_report_date" field.
func LastReportDateNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldLastReportDate, v))
}

// LastReportDateIn applies the In predicate on the "last_report_date" field.
func LastReportDateIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldLastReportDate, vs...))
}

// LastReportDateNotIn applies the NotIn predicate on the "last_report_date" field.
func LastReportDateNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldLastReportDate, vs...))
}

// LastReportDateGT applies the GT predicate on the "last_report_date" field.
func LastReportDateGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldLastReportDate, v))
}

// LastReportDateGTE applies the GTE predicate on the "last_report_date" field.
func LastReportDateGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldLastReportDate, v))
}

// LastReportDateLT applies the LT predicate on the "last_report_date" field.
func LastReportDateLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldLastReportDate, v))
}

// LastReportDateLTE applies the LTE predicate on the "last_report_date" field.
func LastReportDateLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldLastReportDate, v))
}

// LastReportDateIsNil applies the IsNil predicate on the "last_report_date" field.
func LastReportDateIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldLastReportDate))
}

// LastReportDateNotNil applies the NotNil predicate on the "last_report_date" field.
func LastReportDateNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldLastReportDate))
}

// ReportsSubmittedEQ applies the EQ predicate on the "reports_submitted" field.
func ReportsSubmittedEQ(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldReportsSubmitted, v))
}

// ReportsSubmittedNEQ applies the NEQ predicate on the "reports_submitted" field.
func ReportsSubmittedNEQ(v int) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldReportsSubmitted, v))
}

// ReportsSubmittedIn applies the In predicate on the "reports_submitted" field.
func ReportsSubmittedIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldIn(FieldReportsSubmitted, vs...))
}

// ReportsSubmittedNotIn applies the NotIn predicate on the "reports_submitted" field.
func ReportsSubmittedNotIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldReportsSubmitted, vs...))
}

// ReportsSubmittedGT applies the GT predicate on the "reports_submitted" field.
func ReportsSubmittedGT(v int) predicate.User {
	return predicate.User(sql.FieldGT(FieldReportsSubmitted, v))
}

// ReportsSubmittedGTE applies the GTE predicate on the "reports_submitted" field.
func ReportsSubmittedGTE(v int) predicate.User {
	return predicate.User(sql.FieldGTE(FieldReportsSubmitted, v))
}

// ReportsSubmittedLT applies the LT predicate on the "reports_submitted" field.
func ReportsSubmittedLT(v int) predicate.User {
	return predicate.User(sql.FieldLT(FieldReportsSubmitted, v))
}

// ReportsSubmittedLTE applies the LTE predicate on the "reports_submitted" field.
func ReportsSubmittedLTE(v int) predicate.User {
	return predicate.User(sql.FieldLTE(FieldReportsSubmitted, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.User {
	return predicate.User(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldIsActive, v))
}

// HasReports applies the HasEdge predicate on the "reports" edge.
func HasReports() predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ReportsTable, ReportsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReportsWith applies the HasEdge predicate on the "reports" edge with a given conditions (other predicates).
func HasReportsWith(preds ...predicate.Report) predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := newReportsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasVotes applies the HasEdge predicate on the "votes" edge.
func HasVotes() predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, VotesTable, VotesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVotesWith applies the HasEdge predicate on the "votes" edge with a given conditions (other predicates).
func HasVotesWith(preds ...predicate.Vote) predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := newVotesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasComments applies the HasEdge predicate on the "comments" edge.
func HasComments() predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CommentsTable, CommentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCommentsWith applies the HasEdge predicate on the "comments" edge with a given conditions (other predicates).
func HasCommentsWith(preds ...predicate.Comment) predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := newCommentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.User) predicate.User {
	return predicate.User(sql.NotPredicates(p))
}
