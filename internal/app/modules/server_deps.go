package modules

import (
	"strings"

	"memberhub.io/memberhub/internal/api/handlers"
	"memberhub.io/memberhub/internal/api/middleware"
	"memberhub.io/memberhub/internal/config"
)

// NewServerDeps builds base server deps then lets each module contribute explicit wiring.
func NewServerDeps(cfg *config.Config, infra *Infrastructure, mods []Module) handlers.ServerDeps {
	verificationKeys := make([][]byte, 0, len(cfg.Security.JWTVerificationKeys))
	for _, key := range cfg.Security.JWTVerificationKeys {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		verificationKeys = append(verificationKeys, []byte(key))
	}

	deps := handlers.ServerDeps{
		EntClient:   infra.EntClient,
		Pool:        infra.Pool,
		WorkerPools: infra.Pools,
		JWTCfg: middleware.JWTConfig{
			SigningKey:       []byte(cfg.Security.JWTSigningKey),
			VerificationKeys: verificationKeys,
			Issuer:           "memberhub",
			ExpiresIn:        cfg.Security.TokenLifetime,
		},
		RiverClient: infra.RiverClient,
		RealtimeCfg: cfg.Realtime,
	}
	for _, mod := range mods {
		if mod == nil {
			continue
		}
		mod.ContributeServerDeps(&deps)
	}
	return deps
}
