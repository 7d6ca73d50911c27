package modules

import (
	"context"

	"github.com/riverqueue/river"

	"memberhub.io/memberhub/internal/api/handlers"
	"memberhub.io/memberhub/internal/fanout"
	"memberhub.io/memberhub/internal/jobs"
	"memberhub.io/memberhub/internal/realtime"
	"memberhub.io/memberhub/internal/roster"
	"memberhub.io/memberhub/internal/store"
	"memberhub.io/memberhub/internal/targeting"
)

// NotificationModule wires the notification domain: store, targeting,
// realtime hub, fanout engine and the firing/cleanup workers.
type NotificationModule struct {
	infra    *Infrastructure
	store    *store.Store
	resolver *targeting.Resolver
	hub      *realtime.Hub
	engine   *fanout.Engine
}

// NewNotificationModule creates the module with explicit constructor wiring.
func NewNotificationModule(infra *Infrastructure) *NotificationModule {
	s := store.New(infra.EntClient)
	resolver := targeting.NewResolver(roster.NewEntRoster(infra.EntClient))
	hub := realtime.NewHub(infra.Config.Realtime.SendBuffer)
	engine := fanout.New(s, hub, infra.Pools.Fanout)

	return &NotificationModule{
		infra:    infra,
		store:    s,
		resolver: resolver,
		hub:      hub,
		engine:   engine,
	}
}

func (m *NotificationModule) Name() string { return "notification" }

// Hub exposes the realtime hub for router wiring.
func (m *NotificationModule) Hub() *realtime.Hub { return m.hub }

// Store exposes the notification store.
func (m *NotificationModule) Store() *store.Store { return m.store }

func (m *NotificationModule) ContributeServerDeps(deps *handlers.ServerDeps) {
	if deps == nil {
		return
	}
	deps.Store = m.store
	deps.Hub = m.hub
}

func (m *NotificationModule) RegisterWorkers(workers *river.Workers) {
	river.AddWorker(workers, jobs.NewNotificationFireWorker(m.store, m.resolver, m.engine))
	river.AddWorker(workers, jobs.NewDeliveryCleanupWorker(m.store, m.infra.Config.Delivery.ReadRetention))
}

func (m *NotificationModule) Shutdown(context.Context) error {
	m.hub.Close()
	return nil
}
