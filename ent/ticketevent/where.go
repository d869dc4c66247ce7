// Code generated by ent, DO NOT EDIT.

package ticketevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/forgeworks/forge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldContainsFold(FieldID, id))
}

// TicketID applies equality check predicate on the "ticket_id" field. It's identical to TicketIDEQ.
func TicketID(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldEQ(FieldTicketID, v))
}

// FromState applies equality check predicate on the "from_state" field. It's identical to FromStateEQ.
func FromState(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldEQ(FieldFromState, v))
}

// ToState applies equality check predicate on the "to_state" field. It's identical to ToStateEQ.
func ToState(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldEQ(FieldToState, v))
}

// Actor applies equality check predicate on the "actor" field. It's identical to ActorEQ.
func Actor(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldEQ(FieldActor, v))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldEQ(FieldMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// TicketIDEQ applies the EQ predicate on the "ticket_id" field.
func TicketIDEQ(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldEQ(FieldTicketID, v))
}

// TicketIDNEQ applies the NEQ predicate on the "ticket_id" field.
func TicketIDNEQ(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldNEQ(FieldTicketID, v))
}

// TicketIDIn applies the In predicate on the "ticket_id" field.
func TicketIDIn(vs ...string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldIn(FieldTicketID, vs...))
}

// TicketIDNotIn applies the NotIn predicate on the "ticket_id" field.
func TicketIDNotIn(vs ...string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldNotIn(FieldTicketID, vs...))
}

// TicketIDGT applies the GT predicate on the "ticket_id" field.
func TicketIDGT(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldGT(FieldTicketID, v))
}

// TicketIDGTE applies the GTE predicate on the "ticket_id" field.
func TicketIDGTE(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldGTE(FieldTicketID, v))
}

// TicketIDLT applies the LT predicate on the "ticket_id" field.
func TicketIDLT(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldLT(FieldTicketID, v))
}

// TicketIDLTE applies the LTE predicate on the "ticket_id" field.
func TicketIDLTE(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldLTE(FieldTicketID, v))
}

// TicketIDContains applies the Contains predicate on the "ticket_id" field.
func TicketIDContains(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldContains(FieldTicketID, v))
}

// TicketIDHasPrefix applies the HasPrefix predicate on the "ticket_id" field.
func TicketIDHasPrefix(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldHasPrefix(FieldTicketID, v))
}

// TicketIDHasSuffix applies the HasSuffix predicate on the "ticket_id" field.
func TicketIDHasSuffix(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldHasSuffix(FieldTicketID, v))
}

// TicketIDEqualFold applies the EqualFold predicate on the "ticket_id" field.
func TicketIDEqualFold(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldEqualFold(FieldTicketID, v))
}

// TicketIDContainsFold applies the ContainsFold predicate on the "ticket_id" field.
func TicketIDContainsFold(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldContainsFold(FieldTicketID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldNotIn(FieldKind, vs...))
}

// FromStateEQ applies the EQ predicate on the "from_state" field.
func FromStateEQ(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldEQ(FieldFromState, v))
}

// FromStateNEQ applies the NEQ predicate on the "from_state" field.
func FromStateNEQ(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldNEQ(FieldFromState, v))
}

// FromStateIn applies the In predicate on the "from_state" field.
func FromStateIn(vs ...string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldIn(FieldFromState, vs...))
}

// FromStateNotIn applies the NotIn predicate on the "from_state" field.
func FromStateNotIn(vs ...string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldNotIn(FieldFromState, vs...))
}

// FromStateGT applies the GT predicate on the "from_state" field.
func FromStateGT(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldGT(FieldFromState, v))
}

// FromStateGTE applies the GTE predicate on the "from_state" field.
func FromStateGTE(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldGTE(FieldFromState, v))
}

// FromStateLT applies the LT predicate on the "from_state" field.
func FromStateLT(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldLT(FieldFromState, v))
}

// FromStateLTE applies the LTE predicate on the "from_state" field.
func FromStateLTE(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldLTE(FieldFromState, v))
}

// FromStateContains applies the Contains predicate on the "from_state" field.
func FromStateContains(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldContains(FieldFromState, v))
}

// FromStateHasPrefix applies the HasPrefix predicate on the "from_state" field.
func FromStateHasPrefix(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldHasPrefix(FieldFromState, v))
}

// FromStateHasSuffix applies the HasSuffix predicate on the "from_state" field.
func FromStateHasSuffix(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldHasSuffix(FieldFromState, v))
}

// FromStateIsNil applies the IsNil predicate on the "from_state" field.
func FromStateIsNil() predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldIsNull(FieldFromState))
}

// FromStateNotNil applies the NotNil predicate on the "from_state" field.
func FromStateNotNil() predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldNotNull(FieldFromState))
}

// FromStateEqualFold applies the EqualFold predicate on the "from_state" field.
func FromStateEqualFold(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldEqualFold(FieldFromState, v))
}

// FromStateContainsFold applies the ContainsFold predicate on the "from_state" field.
func FromStateContainsFold(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldContainsFold(FieldFromState, v))
}

// ToStateEQ applies the EQ predicate on the "to_state" field.
func ToStateEQ(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldEQ(FieldToState, v))
}

// ToStateNEQ applies the NEQ predicate on the "to_state" field.
func ToStateNEQ(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldNEQ(FieldToState, v))
}

// ToStateIn applies the In predicate on the "to_state" field.
func ToStateIn(vs ...string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldIn(FieldToState, vs...))
}

// ToStateNotIn applies the NotIn predicate on the "to_state" field.
func ToStateNotIn(vs ...string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldNotIn(FieldToState, vs...))
}

// ToStateGT applies the GT predicate on the "to_state" field.
func ToStateGT(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldGT(FieldToState, v))
}

// ToStateGTE applies the GTE predicate on the "to_state" field.
func ToStateGTE(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldGTE(FieldToState, v))
}

// ToStateLT applies the LT predicate on the "to_state" field.
func ToStateLT(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldLT(FieldToState, v))
}

// ToStateLTE applies the LTE predicate on the "to_state" field.
func ToStateLTE(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldLTE(FieldToState, v))
}

// ToStateContains applies the Contains predicate on the "to_state" field.
func ToStateContains(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldContains(FieldToState, v))
}

// ToStateHasPrefix applies the HasPrefix predicate on the "to_state" field.
func ToStateHasPrefix(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldHasPrefix(FieldToState, v))
}

// ToStateHasSuffix applies the HasSuffix predicate on the "to_state" field.
func ToStateHasSuffix(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldHasSuffix(FieldToState, v))
}

// ToStateIsNil applies the IsNil predicate on the "to_state" field.
func ToStateIsNil() predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldIsNull(FieldToState))
}

// ToStateNotNil applies the NotNil predicate on the "to_state" field.
func ToStateNotNil() predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldNotNull(FieldToState))
}

// ToStateEqualFold applies the EqualFold predicate on the "to_state" field.
func ToStateEqualFold(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldEqualFold(FieldToState, v))
}

// ToStateContainsFold applies the ContainsFold predicate on the "to_state" field.
func ToStateContainsFold(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldContainsFold(FieldToState, v))
}

// ActorEQ applies the EQ predicate on the "actor" field.
func ActorEQ(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldEQ(FieldActor, v))
}

// ActorNEQ applies the NEQ predicate on the "actor" field.
func ActorNEQ(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldNEQ(FieldActor, v))
}

// ActorIn applies the In predicate on the "actor" field.
func ActorIn(vs ...string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldIn(FieldActor, vs...))
}

// ActorNotIn applies the NotIn predicate on the "actor" field.
func ActorNotIn(vs ...string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldNotIn(FieldActor, vs...))
}

// ActorGT applies the GT predicate on the "actor" field.
func ActorGT(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldGT(FieldActor, v))
}

// ActorGTE applies the GTE predicate on the "actor" field.
func ActorGTE(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldGTE(FieldActor, v))
}

// ActorLT applies the LT predicate on the "actor" field.
func ActorLT(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldLT(FieldActor, v))
}

// ActorLTE applies the LTE predicate on the "actor" field.
func ActorLTE(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldLTE(FieldActor, v))
}

// ActorContains applies the Contains predicate on the "actor" field.
func ActorContains(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldContains(FieldActor, v))
}

// ActorHasPrefix applies the HasPrefix predicate on the "actor" field.
func ActorHasPrefix(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldHasPrefix(FieldActor, v))
}

// ActorHasSuffix applies the HasSuffix predicate on the "actor" field.
func ActorHasSuffix(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldHasSuffix(FieldActor, v))
}

// ActorEqualFold applies the EqualFold predicate on the "actor" field.
func ActorEqualFold(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldEqualFold(FieldActor, v))
}

// ActorContainsFold applies the ContainsFold predicate on the "actor" field.
func ActorContainsFold(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldContainsFold(FieldActor, v))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageIsNil applies the IsNil predicate on the "message" field.
func MessageIsNil() predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldIsNull(FieldMessage))
}

// MessageNotNil applies the NotNil predicate on the "message" field.
func MessageNotNil() predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldNotNull(FieldMessage))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldContainsFold(FieldMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TicketEvent {
	return predicate.TicketEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// HasTicket applies the HasEdge predicate on the "ticket" edge.
func HasTicket() predicate.TicketEvent {
	return predicate.TicketEvent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TicketTable, TicketColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTicketWith applies the HasEdge predicate on the "ticket" edge with a given conditions (other predicates).
func HasTicketWith(preds ...predicate.Ticket) predicate.TicketEvent {
	return predicate.TicketEvent(func(s *sql.Selector) {
		step := newTicketStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TicketEvent) predicate.TicketEvent {
	return predicate.TicketEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TicketEvent) predicate.TicketEvent {
	return predicate.TicketEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TicketEvent) predicate.TicketEvent {
	return predicate.TicketEvent(sql.NotPredicates(p))
}
