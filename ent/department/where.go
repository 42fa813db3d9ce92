// Code generated by ent, DO NOT EDIT.

package department

import (
	"CivicPulseAPI/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Department {
	return predicate.Department(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Department {
	return predicate.Department(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Department {
	return predicate.Department(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Department {
	return predicate.Department(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Department {
	return predicate.Department(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Department {
	return predicate.Department(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Department {
	return predicate.Department(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Department {
	return predicate.Department(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Department {
	return predicate.Department(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Department {
	return predicate.Department(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Department {
	return predicate.Department(sql.FieldEQ(FieldUpdatedAt, v))
}

// Code applies equality check predicate on the "code" field. It's identical to CodeEQ.
func Code(v string) predicate.Department {
	return predicate.Department(sql.FieldEQ(FieldCode, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Department {
	return predicate.Department(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Department {
	return predicate.Department(sql.FieldEQ(FieldDescription, v))
}

// ResponseHours applies equality check predicate on the "response_hours" field. It's identical to ResponseHoursEQ.
func ResponseHours(v float64) predicate.Department {
	return predicate.Department(sql.FieldEQ(FieldResponseHours, v))
}

// ResolutionHours applies equality check predicate on the "resolution_hours" field. It's identical to ResolutionHoursEQ.
func ResolutionHours(v float64) predicate.Department {
	return predicate.Department(sql.FieldEQ(FieldResolutionHours, v))
}

// EscalationThresholdHours applies equality check predicate on the "escalation_threshold_hours" field. It's identical to EscalationThresholdHoursEQ.
func EscalationThresholdHours(v float64) predicate.Department {
	return predicate.Department(sql.FieldEQ(FieldEscalationThresholdHours, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.Department {
	return predicate.Department(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Department {
	return predicate.Department(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Department {
	return predicate.Department(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Department {
	return predicate.Department(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Department {
	return predicate.Department(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Department {
	return predicate.Department(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Department {
	return predicate.Department(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Department {
	return predicate.Department(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Department {
	return predicate.Department(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Department {
	return predicate.Department(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Department {
	return predicate.Department(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Department {
	return predicate.Department(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Department {
	return predicate.Department(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Department {
	return predicate.Department(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Department {
	return predicate.Department(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Department {
	return predicate.Department(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Department {
	return predicate.Department(sql.FieldLTE(FieldUpdatedAt, v))
}

// CodeEQ applies the EQ predicate on the "code" field.
func CodeEQ(v string) predicate.Department {
	return predicate.Department(sql.FieldEQ(FieldCode, v))
}

// CodeNEQ applies the NEQ predicate on the "code" field.
func CodeNEQ(v string) predicate.Department {
	return predicate.Department(sql.FieldNEQ(FieldCode, v))
}

// CodeIn applies the In predicate on the "code" field.
func CodeIn(vs ...string) predicate.Department {
	return predicate.Department(sql.FieldIn(FieldCode, vs...))
}

// CodeNotIn applies the NotIn predicate on the "code" field.
func CodeNotIn(vs ...string) predicate.Department {
	return predicate.Department(sql.FieldNotIn(FieldCode, vs...))
}

// CodeGT applies the GT predicate on the "code" field.
func CodeGT(v string) predicate.Department {
	return predicate.Department(sql.FieldGT(FieldCode, v))
}

// CodeGTE applies the GTE predicate on the "code" field.
func CodeGTE(v string) predicate.Department {
	return predicate.Department(sql.FieldGTE(FieldCode, v))
}

// CodeLT applies the LT predicate on the "code" field.
func CodeLT(v string) predicate.Department {
	return predicate.Department(sql.FieldLT(FieldCode, v))
}

// CodeLTE applies the LTE predicate on the "code" field.
func CodeLTE(v string) predicate.Department {
	return predicate.Department(sql.FieldLTE(FieldCode, v))
}

// CodeContains applies the Contains predicate on the "code" field.
func CodeContains(v string) predicate.Department {
	return predicate.Department(sql.FieldContains(FieldCode, v))
}

// CodeHasPrefix applies the HasPrefix predicate on the "code" field.
func CodeHasPrefix(v string) predicate.Department {
	return predicate.Department(sql.FieldHasPrefix(FieldCode, v))
}

// CodeHasSuffix applies the HasSuffix predicate on the "code" field.
func CodeHasSuffix(v string) predicate.Department {
	return predicate.Department(sql.FieldHasSuffix(FieldCode, v))
}

// CodeEqualFold applies the EqualFold predicate on the "code" field.
func CodeEqualFold(v string) predicate.Department {
	return predicate.Department(sql.FieldEqualFold(FieldCode, v))
}

// CodeContainsFold applies the ContainsFold predicate on the "code" field.
func CodeContainsFold(v string) predicate.Department {
	return predicate.Department(sql.FieldContainsFold(FieldCode, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Department {
	return predicate.Department(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Department {
	return predicate.Department(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Department {
	return predicate.Department(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Department {
	return predicate.Department(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Department {
	return predicate.Department(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Department {
	return predicate.Department(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Department {
	return predicate.Department(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Department {
	return predicate.Department(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Department {
	return predicate.Department(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Department {
	return predicate.Department(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Department {
	return predicate.Department(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Department {
	return predicate.Department(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Department {
	return predicate.Department(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Department {
	return predicate.Department(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Department {
	return predicate.Department(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Department {
	return predicate.Department(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Department {
	return predicate.Department(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Department {
	return predicate.Department(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Department {
	return predicate.Department(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Department {
	return predicate.Department(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Department {
	return predicate.Department(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Department {
	return predicate.Department(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Department {
	return predicate.Department(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Department {
	return predicate.Department(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Department {
	return predicate.Department(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Department {
	return predicate.Department(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Department {
	return predicate.Department(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Department {
	return predicate.Department(sql.FieldContainsFold(FieldDescription, v))
}

// CategoriesIsNil applies the IsNil predicate on the "categories" field.
func CategoriesIsNil() predicate.Department {
	return predicate.Department(sql.FieldIsNull(FieldCategories))
}

// CategoriesNotNil applies the NotNil predicate on the "categories" field.
func CategoriesNotNil() predicate.Department {
	return predicate.Department(sql.FieldNotNull(FieldCategories))
}

// ResponseHoursEQ applies the EQ predicate on the "response_hours" field.
func ResponseHoursEQ(v float64) predicate.Department {
	return predicate.Department(sql.FieldEQ(FieldResponseHours, v))
}

// ResponseHoursNEQ applies the NEQ predicate on the "response_hours" field.
func ResponseHoursNEQ(v float64) predicate.Department {
	return predicate.Department(sql.FieldNEQ(FieldResponseHours, v))
}

// ResponseHoursIn applies the In predicate on the "response_hours" field.
func ResponseHoursIn(vs ...float64) predicate.Department {
	return predicate.Department(sql.FieldIn(FieldResponseHours, vs...))
}

// ResponseHoursNotIn applies the NotIn predicate on the "response_hours" field.
func ResponseHoursNotIn(vs ...float64) predicate.Department {
	return predicate.Department(sql.FieldNotIn(FieldResponseHours, vs...))
}

// ResponseHoursGT applies the GT predicate on the "response_hours" field.
func ResponseHoursGT(v float64) predicate.Department {
	return predicate.Department(sql.FieldGT(FieldResponseHours, v))
}

// ResponseHoursGTE applies the GTE predicate on the "response_hours" field.
func ResponseHoursGTE(v float64) predicate.Department {
	return predicate.Department(sql.FieldGTE(FieldResponseHours, v))
}

// ResponseHoursLT applies the LT predicate on the "response_hours" field.
func ResponseHoursLT(v float64) predicate.Department {
	return predicate.Department(sql.FieldLT(FieldResponseHours, v))
}

// ResponseHoursLTE applies the LTE predicate on the "response_hours" field.
func ResponseHoursLTE(v float64) predicate.Department {
	return predicate.Department(sql.FieldLTE(FieldResponseHours, v))
}

// ResolutionHoursEQ applies the EQ predicate on the "resolution_hours" field.
func ResolutionHoursEQ(v float64) predicate.Department {
	return predicate.Department(sql.FieldEQ(FieldResolutionHours, v))
}

// ResolutionHoursNEQ applies the NEQ predicate on the "resolution_hours" field.
func ResolutionHoursNEQ(v float64) predicate.Department {
	return predicate.Department(sql.FieldNEQ(FieldResolutionHours, v))
}

// ResolutionHoursIn applies the In predicate on the "resolution_hours" field.
func ResolutionHoursIn(vs ...float64) predicate.Department {
	return predicate.Department(sql.FieldIn(FieldResolutionHours, vs...))
}

// ResolutionHoursNotIn applies the NotIn predicate on the "resolution_hours" field.
func ResolutionHoursNotIn(vs ...float64) predicate.Department {
	return predicate.Department(sql.FieldNotIn(FieldResolutionHours, vs...))
}

// ResolutionHoursGT applies the GT predicate on the "resolution_hours" field.
func ResolutionHoursGT(v float64) predicate.Department {
	return predicate.Department(sql.FieldGT(FieldResolutionHours, v))
}

// ResolutionHoursGTE applies the GTE predicate on the "resolution_hours" field.
func ResolutionHoursGTE(v float64) predicate.Department {
	return predicate.Department(sql.FieldGTE(FieldResolutionHours, v))
}

// ResolutionHoursLT applies the LT predicate on the "resolution_hours" field.
func ResolutionHoursLT(v float64) predicate.Department {
	return predicate.Department(sql.FieldLT(FieldResolutionHours, v))
}

// ResolutionHoursLTE applies the LTE predicate on the "resolution_hours" field.
func ResolutionHoursLTE(v float64) predicate.Department {
	return predicate.Department(sql.FieldLTE(FieldResolutionHours, v))
}

// EscalationThresholdHoursEQ applies the EQ predicate on the "escalation_threshold_hours" field.
func EscalationThresholdHoursEQ(v float64) predicate.Department {
	return predicate.Department(sql.FieldEQ(FieldEscalationThresholdHours, v))
}

// EscalationThresholdHoursNEQ applies the NEQ predicate on the "escalation_threshold_hours" field.
func EscalationThresholdHoursNEQ(v float64) predicate.Department {
	return predicate.Department(sql.FieldNEQ(FieldEscalationThresholdHours, v))
}

// EscalationThresholdHoursIn applies the In predicate on the "escalation_threshold_hours" field.
func EscalationThresholdHoursIn(vs ...float64) predicate.Department {
	return predicate.Department(sql.FieldIn(FieldEscalationThresholdHours, vs...))
}

// EscalationThresholdHoursNotIn applies the NotIn predicate on the "escalation_threshold_hours" field.
func EscalationThresholdHoursNotIn(vs ...float64) predicate.Department {
	return predicate.Department(sql.FieldNotIn(FieldEscalationThresholdHours, vs...))
}

// EscalationThresholdHoursGT applies the GT predicate on the "escalation_threshold_hours" field.
func EscalationThresholdHoursGT(v float64) predicate.Department {
	return predicate.Department(sql.FieldGT(FieldEscalationThresholdHours, v))
}

// EscalationThresholdHoursGTE applies the GTE predicate on the "escalation_threshold_hours" field.
func EscalationThresholdHoursGTE(v float64) predicate.Department {
	return predicate.Department(sql.FieldGTE(FieldEscalationThresholdHours, v))
}

// EscalationThresholdHoursLT applies the LT predicate on the "escalation_threshold_hours" field.
func EscalationThresholdHoursLT(v float64) predicate.Department {
	return predicate.Department(sql.FieldLT(FieldEscalationThresholdHours, v))
}

// EscalationThresholdHoursLTE applies the LTE predicate on the "escalation_threshold_hours" field.
func EscalationThresholdHoursLTE(v float64) predicate.Department {
	return predicate.Department(sql.FieldLTE(FieldEscalationThresholdHours, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.Department {
	return predicate.Department(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.Department {
	return predicate.Department(sql.FieldNEQ(FieldIsActive, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Department) predicate.Department {
	return predicate.Department(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Department) predicate.Department {
	return predicate.Department(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Department) predicate.Department {
	return predicate.Department(sql.NotPredicates(p))
}
