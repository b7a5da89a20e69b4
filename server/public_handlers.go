package server

import (
	"follower_bot/dto"
	"follower_bot/logic"
	"follower_bot/shared"
	"net/http"
)

type publicHandlerGroup struct {
	cfg     *shared.Config
	logger  shared.ILogger
	metrics logic.IMetrics
	engine  logic.IEngine
}

func NewPublicHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	metrics logic.IMetrics,
	engine logic.IEngine,
) IHandlerGroup {
	res := publicHandlerGroup{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
		engine:  engine,
	}
	return &res
}

func (hg *publicHandlerGroup) Prefix() string {
	return "/"
}

func (hg *publicHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", "/health", func(w http.ResponseWriter, r *http.Request) { hg.getHealth(w, r) }},
		{"GET", "/status", func(w http.ResponseWriter, r *http.Request) { hg.getStatus(w, r) }},
	}
}

func (hg *publicHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return emptyMW
}

func (hg *publicHandlerGroup) getHealth(w http.ResponseWriter, r *http.Request) {
	obs := hg.metrics.StartWebRequestIn("health")
	defer obs.Finish()

	resp := dto.HealthResp{
		Status:      "healthy",
		AppName:     hg.cfg.AppName,
		Environment: hg.cfg.AppEnv,
	}
	writeJsonResponse(hg.logger, w, &resp)
}

func (hg *publicHandlerGroup) getStatus(w http.ResponseWriter, r *http.Request) {
	obs := hg.metrics.StartWebRequestIn("status")
	defer obs.Finish()

	writeJsonResponse(hg.logger, w, hg.engine.Status())
}
