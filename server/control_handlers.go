package server

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"follower_bot/dto"
	"follower_bot/logic"
	"follower_bot/shared"
	"net/http"
)

type controlHandlerGroup struct {
	cfg     *shared.Config
	logger  shared.ILogger
	metrics logic.IMetrics
	engine  logic.IEngine
}

func NewControlHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	metrics logic.IMetrics,
	engine logic.IEngine,
) IHandlerGroup {
	res := controlHandlerGroup{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
		engine:  engine,
	}
	return &res
}

func (hg *controlHandlerGroup) Prefix() string {
	return "/v1"
}

func (hg *controlHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", "/config", func(w http.ResponseWriter, r *http.Request) { hg.getConfig(w, r) }},
		{"POST", "/start", func(w http.ResponseWriter, r *http.Request) { hg.postStart(w, r) }},
		{"POST", "/stop", func(w http.ResponseWriter, r *http.Request) { hg.postStop(w, r) }},
		{"POST", "/follow-back", func(w http.ResponseWriter, r *http.Request) {
			hg.runTask(w, "follow-back", hg.engine.TriggerFollowBack, "✅ Follow-back check completed")
		}},
		{"POST", "/cleanup", func(w http.ResponseWriter, r *http.Request) {
			hg.runTask(w, "cleanup", hg.engine.TriggerCleanup, "✅ Cleanup completed")
		}},
		{"POST", "/farm", func(w http.ResponseWriter, r *http.Request) {
			hg.runTask(w, "farm", hg.engine.TriggerFarm, "✅ Farming cycle completed")
		}},
		{"POST", "/cycle", func(w http.ResponseWriter, r *http.Request) {
			hg.runTask(w, "cycle", hg.engine.TriggerCycle, "✅ Cycle completed")
		}},
		{"POST", "/star", func(w http.ResponseWriter, r *http.Request) { hg.postStar(w, r) }},
	}
}

func (hg *controlHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	if hg.cfg.Secrets.ApiKey == "" {
		return emptyMW
	}
	return func(next http.Handler) http.Handler {
		return hg.authMW(next)
	}
}

func (hg *controlHandlerGroup) authMW(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var apiKey = r.Header.Get(apiKeyHeader)
		if subtle.ConstantTimeCompare([]byte(apiKey), []byte(hg.cfg.Secrets.ApiKey)) != 1 {
			keyPart := apiKey
			if len(apiKey) > 4 {
				keyPart = apiKey[:4] + "..."
			}
			hg.logger.Warnf("API request with missing or invalid key '%s': %s", keyPart, r.URL.Path)
			writeErrorResponse(w, badApiKeyStr, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Maps engine errors to HTTP status codes.
func (hg *controlHandlerGroup) writeEngineError(w http.ResponseWriter, label string, err error) {
	switch {
	case errors.Is(err, logic.ErrNotInitialized):
		writeErrorResponse(w, notInitializedStr, http.StatusInternalServerError)
	case errors.Is(err, logic.ErrBusy):
		writeErrorResponse(w, err.Error(), http.StatusConflict)
	default:
		hg.logger.Errorf("%s request failed: %v", label, err)
		writeErrorResponse(w, err.Error(), http.StatusInternalServerError)
	}
}

func (hg *controlHandlerGroup) getConfig(w http.ResponseWriter, r *http.Request) {
	obs := hg.metrics.StartWebRequestIn("config")
	defer obs.Finish()

	resp, err := hg.engine.ConfigInfo()
	if err != nil {
		hg.writeEngineError(w, "config", err)
		return
	}
	writeJsonResponse(hg.logger, w, resp)
}

func (hg *controlHandlerGroup) postStart(w http.ResponseWriter, r *http.Request) {
	obs := hg.metrics.StartWebRequestIn("start")
	defer obs.Finish()

	started, err := hg.engine.Start()
	if err != nil {
		hg.writeEngineError(w, "start", err)
		return
	}
	resp := dto.MessageResp{Message: "✅ Farming started in background", Success: true}
	if !started {
		resp = dto.MessageResp{Message: "Bot is already running", Success: false}
	}
	writeJsonResponse(hg.logger, w, &resp)
}

func (hg *controlHandlerGroup) postStop(w http.ResponseWriter, r *http.Request) {
	obs := hg.metrics.StartWebRequestIn("stop")
	defer obs.Finish()

	resp := dto.MessageResp{Message: "🛑 Farming stopping (will finish current cycle)", Success: true}
	if !hg.engine.Stop() {
		resp = dto.MessageResp{Message: "Bot is not running", Success: false}
	}
	writeJsonResponse(hg.logger, w, &resp)
}

func (hg *controlHandlerGroup) runTask(w http.ResponseWriter, label string, fn func() error, okMsg string) {
	obs := hg.metrics.StartWebRequestIn(label)
	defer obs.Finish()

	hg.logger.Infof("Manual %s requested", label)
	if err := fn(); err != nil {
		hg.writeEngineError(w, label, err)
		return
	}
	writeJsonResponse(hg.logger, w, &dto.MessageResp{Message: okMsg, Success: true})
}

func (hg *controlHandlerGroup) postStar(w http.ResponseWriter, r *http.Request) {
	obs := hg.metrics.StartWebRequestIn("star")
	defer obs.Finish()

	body := readBody(hg.logger, w, r)
	if body == nil {
		return
	}
	var req dto.StarReq
	if err := json.Unmarshal(body, &req); err != nil {
		hg.logger.Infof("Invalid star request body: %v", err)
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	if _, _, err := shared.SplitRepoName(req.Repo); err != nil {
		writeErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	starred, err := hg.engine.TriggerStar(req.Repo)
	if err != nil {
		hg.writeEngineError(w, "star", err)
		return
	}
	resp := dto.MessageResp{Message: "⭐ Starred " + req.Repo, Success: true}
	if !starred {
		resp = dto.MessageResp{Message: "Already starred " + req.Repo, Success: false}
	}
	writeJsonResponse(hg.logger, w, &resp)
}
