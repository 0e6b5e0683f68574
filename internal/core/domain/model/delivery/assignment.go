package delivery

import (
	"errors"
	"strings"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

// DefaultPickupLead is how far ahead of assignment the pickup is scheduled.
const DefaultPickupLead = 15 * time.Minute

var ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment constructor")

// Assignment binds an order to the agent delivering it.
type Assignment struct {
	id           kernel.UUID
	orderID      kernel.UUID
	storeID      kernel.UUID
	agentID      kernel.UUID
	status       Status
	assignedAt   time.Time
	pickupTime   time.Time
	deliveryTime *time.Time
	notes        string

	isConstructed bool
}

// NewAssignment creates an assignment in the assigned status with the pickup
// scheduled pickupLead after now.
func NewAssignment(id, orderID, storeID, agentID kernel.UUID, now time.Time, pickupLead time.Duration) (*Assignment, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), storeID.Validate(), agentID.Validate()); err != nil {
		return nil, err
	}
	if pickupLead < 0 {
		return nil, errs.NewValueIsOutOfRangeError("pickup lead", pickupLead, 0, "unbounded")
	}

	now = now.UTC()
	return &Assignment{
		id:            id,
		orderID:       orderID,
		storeID:       storeID,
		agentID:       agentID,
		status:        Assigned,
		assignedAt:    now,
		pickupTime:    now.Add(pickupLead),
		isConstructed: true,
	}, nil
}

// RestoreAssignment rebuilds an assignment loaded from storage.
func RestoreAssignment(
	id, orderID, storeID, agentID kernel.UUID,
	status Status,
	assignedAt, pickupTime time.Time,
	deliveryTime *time.Time,
	notes string,
) (*Assignment, error) {
	if err := errors.Join(
		id.Validate(), orderID.Validate(), storeID.Validate(), agentID.Validate(), status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Assignment{
		id:            id,
		orderID:       orderID,
		storeID:       storeID,
		agentID:       agentID,
		status:        status,
		assignedAt:    assignedAt.UTC(),
		pickupTime:    pickupTime.UTC(),
		deliveryTime:  deliveryTime,
		notes:         notes,
		isConstructed: true,
	}, nil
}

func (a *Assignment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAssignmentIsNotConstructed
	}
	return nil
}

func (a *Assignment) ID() kernel.UUID          { return a.id }
func (a *Assignment) OrderID() kernel.UUID     { return a.orderID }
func (a *Assignment) StoreID() kernel.UUID     { return a.storeID }
func (a *Assignment) AgentID() kernel.UUID     { return a.agentID }
func (a *Assignment) Status() Status           { return a.status }
func (a *Assignment) AssignedAt() time.Time    { return a.assignedAt }
func (a *Assignment) PickupTime() time.Time    { return a.pickupTime }
func (a *Assignment) DeliveryTime() *time.Time { return a.deliveryTime }
func (a *Assignment) Notes() string            { return a.notes }

// MarkPickedUp stamps the actual pickup time.
func (a *Assignment) MarkPickedUp(now time.Time, notes string) error {
	if err := a.move(PickedUp); err != nil {
		return err
	}
	a.pickupTime = now.UTC()
	a.setNotes(notes)
	return nil
}

// MarkDelivered stamps the delivery time.
func (a *Assignment) MarkDelivered(now time.Time, notes string) error {
	if err := a.move(Delivered); err != nil {
		return err
	}
	t := now.UTC()
	a.deliveryTime = &t
	a.setNotes(notes)
	return nil
}

// Advance applies MarkPickedUp or MarkDelivered depending on target.
func (a *Assignment) Advance(target Status, now time.Time, notes string) error {
	switch target {
	case PickedUp:
		return a.MarkPickedUp(now, notes)
	case Delivered:
		return a.MarkDelivered(now, notes)
	default:
		return errs.NewInvalidTransitionError("delivery", a.status.String(), target.String())
	}
}

func (a *Assignment) move(target Status) error {
	if !a.status.CanTransitionTo(target) {
		return errs.NewInvalidTransitionError("delivery", a.status.String(), target.String())
	}
	a.status = target
	return nil
}

// setNotes keeps the previous notes when the update carries none.
func (a *Assignment) setNotes(notes string) {
	if trimmed := strings.TrimSpace(notes); trimmed != "" {
		a.notes = trimmed
	}
}
