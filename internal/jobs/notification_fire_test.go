package jobs

import (
	"testing"
	"time"

	"memberhub.io/memberhub/ent"
	"memberhub.io/memberhub/ent/notificationdefinition"
	"memberhub.io/memberhub/internal/targeting"
)

func TestTargetSpecOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		def  *ent.NotificationDefinition
		want targeting.Spec
	}{
		{
			name: "group",
			def: &ent.NotificationDefinition{
				TargetKind:  notificationdefinition.TargetKindGROUP,
				TargetValue: "g-choir",
			},
			want: targeting.Group("g-choir"),
		},
		{
			name: "all carries no value",
			def: &ent.NotificationDefinition{
				TargetKind: notificationdefinition.TargetKindALL,
			},
			want: targeting.All(),
		},
		{
			name: "member type",
			def: &ent.NotificationDefinition{
				TargetKind:  notificationdefinition.TargetKindMEMBER_TYPE,
				TargetValue: "VOLUNTEER",
			},
			want: targeting.MemberType("VOLUNTEER"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := targetSpecOf(tt.def); got != tt.want {
				t.Fatalf("targetSpecOf() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestInboxItemFor(t *testing.T) {
	t.Parallel()

	firedAt := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	def := &ent.NotificationDefinition{
		Title:   "Choir rehearsal",
		Message: "Moved to 7pm",
		Type:    notificationdefinition.TypeREMINDER,
	}

	item := inboxItemFor(def, "inst-1", firedAt)
	if item.InstanceID != "inst-1" {
		t.Fatalf("instance = %q", item.InstanceID)
	}
	if item.Title != "Choir rehearsal" || item.Message != "Moved to 7pm" {
		t.Fatalf("content = %q / %q", item.Title, item.Message)
	}
	if item.Type != "REMINDER" {
		t.Fatalf("type = %q", item.Type)
	}
	if !item.FiredAt.Equal(firedAt) {
		t.Fatalf("fired_at = %v", item.FiredAt)
	}
	if item.IsRead {
		t.Fatal("pushed item must be unread")
	}
}
