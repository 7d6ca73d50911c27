package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"memberhub.io/memberhub/ent"
	"memberhub.io/memberhub/ent/notificationdefinition"
	"memberhub.io/memberhub/internal/jobs"
	apperrors "memberhub.io/memberhub/internal/pkg/errors"
	"memberhub.io/memberhub/internal/pkg/logger"
	"memberhub.io/memberhub/internal/scheduler"
	"memberhub.io/memberhub/internal/store"
	"memberhub.io/memberhub/internal/targeting"
)

// createNotificationRequest is the body of POST /notifications.
type createNotificationRequest struct {
	Title       string              `json:"title" binding:"required"`
	Message     string              `json:"message" binding:"required"`
	Type        string              `json:"type" binding:"required"`
	Target      targeting.APITarget `json:"target"`
	ScheduledAt *time.Time          `json:"scheduled_at"`
	Recurrence  string              `json:"recurrence"`
}

// CreateNotification handles POST /notifications. The definition is
// persisted and its first firing enqueued: immediately for unscheduled
// notifications, at scheduled_at otherwise.
func (s *Server) CreateNotification(c *gin.Context) {
	ctx := c.Request.Context()

	var req createNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code": apperrors.CodeValidationFailed, "message": err.Error(),
		})
		return
	}

	notifType, err := parseNotificationType(req.Type)
	if err != nil {
		respondError(c, err)
		return
	}

	recurrence := scheduler.Recurrence(req.Recurrence)
	if req.Recurrence == "" {
		recurrence = scheduler.RecurrenceNone
	}
	if !recurrence.Valid() {
		respondError(c, apperrors.ErrInvalidRequestFieldf("recurrence %q", req.Recurrence))
		return
	}
	// A recurring definition without scheduled_at fires immediately; the
	// first occurrence anchors the series.

	spec, err := targeting.ParseAPI(req.Target)
	if err != nil {
		respondError(c, apperrors.ErrTargetInvalidf("%v", err))
		return
	}
	if err := s.validateTargetExists(ctx, spec); err != nil {
		respondError(c, err)
		return
	}

	def, err := s.store.CreateDefinition(ctx, store.DefinitionParams{
		Title:       req.Title,
		Message:     req.Message,
		Type:        notifType,
		TargetKind:  notificationdefinition.TargetKind(spec.Kind),
		TargetValue: spec.Value,
		ScheduledAt: req.ScheduledAt,
		Recurrence:  notificationdefinition.Recurrence(recurrence),
		CreatedBy:   actorFromCtx(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	occurrence := time.Now().UTC()
	if req.ScheduledAt != nil {
		occurrence = req.ScheduledAt.UTC()
	}
	if err := jobs.EnqueueFiring(ctx, s.riverClient, def.ID, occurrence); err != nil {
		logger.Error("failed to enqueue firing for new definition",
			zap.String("definition_id", def.ID),
			zap.Error(err),
		)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, definitionToAPI(def))
}

// ListNotifications handles GET /notifications/:recipientId. It returns
// the recipient's full inbox snapshot, newest first.
func (s *Server) ListNotifications(c *gin.Context) {
	recipientID := c.Param("recipientId")
	if !authorizeRecipient(c, recipientID) {
		return
	}

	items, err := s.store.ListForRecipient(c.Request.Context(), recipientID)
	if err != nil {
		respondError(c, err)
		return
	}

	unread := 0
	for _, item := range items {
		if !item.IsRead {
			unread++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"notifications": items,
		"unread_count":  unread,
	})
}

// GetUnreadCount handles GET /notifications/:recipientId/unread-count.
func (s *Server) GetUnreadCount(c *gin.Context) {
	recipientID := c.Param("recipientId")
	if !authorizeRecipient(c, recipientID) {
		return
	}

	count, err := s.store.UnreadCount(c.Request.Context(), recipientID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// MarkNotificationRead handles PATCH /notifications/read/:instanceId.
// The recipient is the authenticated user. Marking an already-read
// notification is a no-op success.
func (s *Server) MarkNotificationRead(c *gin.Context) {
	instanceID := c.Param("instanceId")
	recipientID := actorFromCtx(c)

	if err := s.store.MarkRead(c.Request.Context(), instanceID, recipientID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "read"})
}

// MarkAllNotificationsRead handles PATCH /notifications/read-all/:recipientId.
// Only notifications present at the time of the call are marked; a
// notification arriving mid-request stays unread.
func (s *Server) MarkAllNotificationsRead(c *gin.Context) {
	recipientID := c.Param("recipientId")
	if !authorizeRecipient(c, recipientID) {
		return
	}

	flipped, err := s.store.MarkAllRead(c.Request.Context(), recipientID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"marked": flipped})
}

// CancelNotification handles DELETE /notifications/:definitionId. Future
// firings stop; already-delivered instances stay in recipient inboxes.
func (s *Server) CancelNotification(c *gin.Context) {
	definitionID := c.Param("definitionId")

	if err := s.store.CancelDefinition(c.Request.Context(), definitionID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ---- Helpers ----

func parseNotificationType(v string) (notificationdefinition.Type, error) {
	switch notificationdefinition.Type(v) {
	case notificationdefinition.TypeREMINDER, notificationdefinition.TypeANNOUNCEMENT:
		return notificationdefinition.Type(v), nil
	default:
		return "", apperrors.ErrInvalidRequestFieldf("type %q", v)
	}
}

// validateTargetExists rejects definitions whose referenced group,
// department or member does not exist at creation time. Membership itself
// is resolved later, at fire time.
func (s *Server) validateTargetExists(ctx context.Context, spec targeting.Spec) error {
	switch spec.Kind {
	case targeting.KindGroup:
		if _, err := s.client.Group.Get(ctx, spec.Value); err != nil {
			if ent.IsNotFound(err) {
				return apperrors.ErrGroupNotFoundf("group %s not found", spec.Value)
			}
			return err
		}
	case targeting.KindDepartment:
		if _, err := s.client.Department.Get(ctx, spec.Value); err != nil {
			if ent.IsNotFound(err) {
				return apperrors.ErrDepartmentNotFoundf("department %s not found", spec.Value)
			}
			return err
		}
	case targeting.KindMember:
		if _, err := s.client.Member.Get(ctx, spec.Value); err != nil {
			if ent.IsNotFound(err) {
				return apperrors.NotFound(apperrors.CodeMemberNotFound, "member "+spec.Value+" not found")
			}
			return err
		}
	}
	// MEMBER_TYPE and ALL reference no entity; an unknown classification
	// simply resolves to nobody.
	return nil
}

func respondError(c *gin.Context, err error) {
	if appErr, ok := apperrors.IsAppError(err); ok {
		c.JSON(appErr.HTTPStatus, gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		})
		return
	}
	logger.Error("request failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{
		"code": "INTERNAL_ERROR", "message": "an internal error occurred",
	})
}

func definitionToAPI(def *ent.NotificationDefinition) gin.H {
	target := gin.H{}
	switch def.TargetKind {
	case notificationdefinition.TargetKindGROUP:
		target["group_id"] = def.TargetValue
	case notificationdefinition.TargetKindDEPARTMENT:
		target["department_id"] = def.TargetValue
	case notificationdefinition.TargetKindMEMBER_TYPE:
		target["member_type"] = def.TargetValue
	case notificationdefinition.TargetKindALL:
		target["is_global"] = true
	case notificationdefinition.TargetKindMEMBER:
		target["member_id"] = def.TargetValue
	}

	out := gin.H{
		"id":         def.ID,
		"title":      def.Title,
		"message":    def.Message,
		"type":       def.Type,
		"target":     target,
		"recurrence": def.Recurrence,
		"state":      def.State,
		"created_by": def.CreatedBy,
		"created_at": def.CreatedAt,
	}
	if def.ScheduledAt != nil {
		out["scheduled_at"] = def.ScheduledAt
	}
	return out
}
