package services

import (
	"time"

	"campusfood/entity"
	"campusfood/pkg/apperr"

	"gorm.io/gorm"
)

// SetStatus drives one lifecycle transition. The transition table is checked
// before any write, so an out-of-table change never reaches storage; the
// persisted row is then moved with a compare-and-set guarded on the expected
// current status, and the returned view reflects state only after that write
// succeeded.
func (s *OrderService) SetStatus(actor entity.Actor, orderID uint, target entity.Status, estimatedReadyAt *time.Time) (*OrderView, error) {
	if !target.Valid() {
		return nil, apperr.Validation("unknown status %q", string(target))
	}

	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if !actor.Owns(o) {
		return nil, apperr.ErrForbidden
	}

	from := o.Status
	if !entity.CanTransition(from, target, actor.Role) {
		return nil, &apperr.InvalidTransitionError{
			From: string(from), To: string(target), Role: string(actor.Role),
		}
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, from, target, estimatedReadyAt)
		if err != nil {
			return err
		}
		if affected == 0 {
			// The order moved between read and write; report it as a
			// rejected transition rather than applying anything.
			cur, err := s.Repo.GetOrder(orderID)
			if err != nil {
				return err
			}
			return &apperr.InvalidTransitionError{
				From: string(cur.Status), To: string(target), Role: string(actor.Role),
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}

	s.Notifier.StatusChanged(updated, from)

	return makeOrderView(updated, actor.Role), nil
}

// CancelForCustomer is the customer-side cancel path; the same table governs
// which states still allow it.
func (s *OrderService) CancelForCustomer(customerID, orderID uint) (*OrderView, error) {
	actor := entity.Actor{UserID: customerID, Role: entity.RoleCustomer}
	return s.SetStatus(actor, orderID, entity.StatusCancelled, nil)
}
