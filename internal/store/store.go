// Package store is the persistence layer for notification definitions,
// instances and per-recipient delivery records. All read-state invariants
// (one record per instance and recipient, reads never un-read) are
// enforced here so callers cannot bypass them.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"memberhub.io/memberhub/ent"
	"memberhub.io/memberhub/ent/deliveryrecord"
	"memberhub.io/memberhub/ent/notificationdefinition"
	"memberhub.io/memberhub/ent/notificationinstance"
	apperrors "memberhub.io/memberhub/internal/pkg/errors"
)

// Store wraps the ent client with the notification domain operations.
type Store struct {
	client *ent.Client
}

// New creates a Store.
func New(client *ent.Client) *Store {
	return &Store{client: client}
}

// Client exposes the underlying ent client for transactional composition.
func (s *Store) Client() *ent.Client {
	return s.client
}

// DefinitionParams holds the fields for creating a notification definition.
type DefinitionParams struct {
	Title       string
	Message     string
	Type        notificationdefinition.Type
	TargetKind  notificationdefinition.TargetKind
	TargetValue string
	ScheduledAt *time.Time
	Recurrence  notificationdefinition.Recurrence
	CreatedBy   string
}

// CreateDefinition persists a new definition in PENDING state.
func (s *Store) CreateDefinition(ctx context.Context, p DefinitionParams) (*ent.NotificationDefinition, error) {
	create := s.client.NotificationDefinition.Create().
		SetID(uuid.NewString()).
		SetTitle(p.Title).
		SetMessage(p.Message).
		SetType(p.Type).
		SetTargetKind(p.TargetKind).
		SetRecurrence(p.Recurrence).
		SetState(notificationdefinition.StatePENDING).
		SetCreatedBy(p.CreatedBy)
	if p.TargetValue != "" {
		create = create.SetTargetValue(p.TargetValue)
	}
	if p.ScheduledAt != nil {
		create = create.SetScheduledAt(*p.ScheduledAt)
	}

	def, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create notification definition: %w", err)
	}
	return def, nil
}

// GetDefinition loads a definition by id.
func (s *Store) GetDefinition(ctx context.Context, id string) (*ent.NotificationDefinition, error) {
	def, err := s.client.NotificationDefinition.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrDefinitionNotFound(id)
		}
		return nil, fmt.Errorf("load definition %s: %w", id, err)
	}
	return def, nil
}

// SetDefinitionState moves a definition to the given state.
func (s *Store) SetDefinitionState(ctx context.Context, id string, state notificationdefinition.State) error {
	err := s.client.NotificationDefinition.UpdateOneID(id).
		SetState(state).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return apperrors.ErrDefinitionNotFound(id)
		}
		return fmt.Errorf("set definition %s state %s: %w", id, state, err)
	}
	return nil
}

// CancelDefinition marks a definition CANCELLED so pending firings become
// no-ops. Cancelling an already terminal definition is idempotent.
func (s *Store) CancelDefinition(ctx context.Context, id string) error {
	return s.SetDefinitionState(ctx, id, notificationdefinition.StateCANCELLED)
}

// CreateInstance records one firing of a definition with the recipient
// set frozen at fire time. The snapshot never changes afterwards.
func (s *Store) CreateInstance(ctx context.Context, definitionID string, firedAt time.Time, snapshot []string) (*ent.NotificationInstance, error) {
	if snapshot == nil {
		snapshot = []string{}
	}
	inst, err := s.client.NotificationInstance.Create().
		SetID(uuid.NewString()).
		SetDefinitionID(definitionID).
		SetFiredAt(firedAt).
		SetRecipientSnapshot(snapshot).
		SetStatus(notificationinstance.StatusFIRED).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create instance for definition %s: %w", definitionID, err)
	}
	return inst, nil
}

// CreateFailedInstance records a firing that could not resolve its
// recipients. The failure text is kept for the console audit view.
func (s *Store) CreateFailedInstance(ctx context.Context, definitionID string, firedAt time.Time, failure string) (*ent.NotificationInstance, error) {
	inst, err := s.client.NotificationInstance.Create().
		SetID(uuid.NewString()).
		SetDefinitionID(definitionID).
		SetFiredAt(firedAt).
		SetRecipientSnapshot([]string{}).
		SetStatus(notificationinstance.StatusFAILED).
		SetFailure(failure).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create failed instance for definition %s: %w", definitionID, err)
	}
	return inst, nil
}

// FindInstance looks up the instance of one logical firing, identified by
// definition and occurrence time. Returns nil when the firing has not
// happened yet.
func (s *Store) FindInstance(ctx context.Context, definitionID string, firedAt time.Time) (*ent.NotificationInstance, error) {
	inst, err := s.client.NotificationInstance.Query().
		Where(
			notificationinstance.DefinitionID(definitionID),
			notificationinstance.FiredAt(firedAt),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find instance %s@%s: %w", definitionID, firedAt.Format(time.RFC3339), err)
	}
	return inst, nil
}

// GetInstance loads an instance by id.
func (s *Store) GetInstance(ctx context.Context, id string) (*ent.NotificationInstance, error) {
	inst, err := s.client.NotificationInstance.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrInstanceNotFound(id)
		}
		return nil, fmt.Errorf("load instance %s: %w", id, err)
	}
	return inst, nil
}

// CreateDelivery writes the delivery record binding an instance to one
// recipient. At most one record exists per (instance, recipient); a
// repeated write reports created=false instead of duplicating, which
// makes fanout retries idempotent.
func (s *Store) CreateDelivery(ctx context.Context, instanceID, recipientID string, via deliveryrecord.DeliveredVia) (created bool, err error) {
	exists, err := s.client.DeliveryRecord.Query().
		Where(
			deliveryrecord.InstanceID(instanceID),
			deliveryrecord.RecipientID(recipientID),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("check delivery existence: %w", err)
	}
	if exists {
		return false, nil
	}

	err = s.client.DeliveryRecord.Create().
		SetID(uuid.NewString()).
		SetInstanceID(instanceID).
		SetRecipientID(recipientID).
		SetIsRead(false).
		SetDeliveredVia(via).
		Exec(ctx)
	if err != nil {
		// The unique index may still fire under concurrent retries.
		if ent.IsConstraintError(err) {
			return false, nil
		}
		return false, fmt.Errorf("create delivery %s/%s: %w", instanceID, recipientID, err)
	}
	return true, nil
}

// MarkRead flips a delivery record to read. The transition is one-way:
// an already-read record stays read and the call succeeds, preserving
// the original read_at.
func (s *Store) MarkRead(ctx context.Context, instanceID, recipientID string) error {
	n, err := s.client.DeliveryRecord.Update().
		Where(
			deliveryrecord.InstanceID(instanceID),
			deliveryrecord.RecipientID(recipientID),
			deliveryrecord.IsRead(false),
		).
		SetIsRead(true).
		SetReadAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark delivery read %s/%s: %w", instanceID, recipientID, err)
	}
	if n > 0 {
		return nil
	}

	exists, err := s.client.DeliveryRecord.Query().
		Where(
			deliveryrecord.InstanceID(instanceID),
			deliveryrecord.RecipientID(recipientID),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check delivery existence: %w", err)
	}
	if !exists {
		return apperrors.ErrDeliveryNotFound(instanceID, recipientID)
	}
	// Already read: idempotent no-op.
	return nil
}

// MarkAllRead marks every currently unread delivery of the recipient as
// read and returns how many records flipped. Records created after the
// statement snapshot are untouched, so a notification arriving mid-call
// stays unread.
func (s *Store) MarkAllRead(ctx context.Context, recipientID string) (int, error) {
	n, err := s.client.DeliveryRecord.Update().
		Where(
			deliveryrecord.RecipientID(recipientID),
			deliveryrecord.IsRead(false),
		).
		SetIsRead(true).
		SetReadAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("mark all read for %s: %w", recipientID, err)
	}
	return n, nil
}

// InboxItem is one notification as the recipient's inbox sees it.
type InboxItem struct {
	InstanceID string     `json:"id"`
	Title      string     `json:"title"`
	Message    string     `json:"message"`
	Type       string     `json:"type"`
	FiredAt    time.Time  `json:"created_at"`
	IsRead     bool       `json:"is_read"`
	ReadAt     *time.Time `json:"read_at,omitempty"`
}

// ListForRecipient returns the recipient's inbox, newest first.
func (s *Store) ListForRecipient(ctx context.Context, recipientID string) ([]InboxItem, error) {
	records, err := s.client.DeliveryRecord.Query().
		Where(deliveryrecord.RecipientID(recipientID)).
		WithInstance(func(q *ent.NotificationInstanceQuery) {
			q.WithDefinition()
		}).
		Order(ent.Desc(deliveryrecord.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list inbox for %s: %w", recipientID, err)
	}

	items := make([]InboxItem, 0, len(records))
	for _, rec := range records {
		inst := rec.Edges.Instance
		if inst == nil || inst.Edges.Definition == nil {
			// Instance purged concurrently; skip the orphan.
			continue
		}
		def := inst.Edges.Definition
		items = append(items, InboxItem{
			InstanceID: inst.ID,
			Title:      def.Title,
			Message:    def.Message,
			Type:       string(def.Type),
			FiredAt:    inst.FiredAt,
			IsRead:     rec.IsRead,
			ReadAt:     rec.ReadAt,
		})
	}
	return items, nil
}

// UnreadCount derives the recipient's unread badge count. It is never
// stored, so it cannot drift from the delivery records.
func (s *Store) UnreadCount(ctx context.Context, recipientID string) (int, error) {
	n, err := s.client.DeliveryRecord.Query().
		Where(
			deliveryrecord.RecipientID(recipientID),
			deliveryrecord.IsRead(false),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count unread for %s: %w", recipientID, err)
	}
	return n, nil
}

// PurgeReadBefore deletes read delivery records older than the cutoff and
// returns how many were removed. Unread records are never purged.
func (s *Store) PurgeReadBefore(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.DeliveryRecord.Delete().
		Where(
			deliveryrecord.IsRead(true),
			deliveryrecord.CreatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("purge read deliveries before %s: %w", cutoff, err)
	}
	return n, nil
}
