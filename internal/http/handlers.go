package http

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mkrogh/fantasyliga/internal/leaderboard"
	"github.com/mkrogh/fantasyliga/internal/lineup"
	"github.com/mkrogh/fantasyliga/internal/points"
	"github.com/mkrogh/fantasyliga/internal/pubsub"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) ClearStoreHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Received request to clear entire store")
		for name, clear := range map[string]func() error{
			"points":       s.Points.Clear,
			"lineups":      s.Lineups.Clear,
			"performances": s.Performances.Clear,
			"players":      s.Catalog.Clear,
		} {
			if err := clear(); err != nil {
				log.Error("Failed to clear store", "store", name, "error", err)
				http.Error(w, "Failed to clear store", http.StatusInternalServerError)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "Store cleared!")
		log.Info("Store cleared successfully")
	}
}

func (s *Server) ListPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := s.Catalog.GetAllPlayers()
		if err != nil {
			http.Error(w, "Failed to get players", http.StatusInternalServerError)
			log.Error("Failed to get players from store", "error", err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(players); err != nil {
			log.Error("Failed to write response", "error", err)
		}
	}
}

func (s *Server) ListPerformancesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerName := r.URL.Query().Get("player")
		if playerName != "" {
			records, err := s.Performances.GetRecordsForPlayer(playerName)
			if err != nil {
				http.Error(w, "Failed to get performance records", http.StatusInternalServerError)
				log.Error("Failed to get performance records from store", "player", playerName, "error", err)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			if err := json.NewEncoder(w).Encode(records); err != nil {
				log.Error("Failed to encode records to JSON", "error", err)
			}
			return
		}

		records, err := s.Performances.GetAllRecords()
		if err != nil {
			http.Error(w, "Failed to get performance records", http.StatusInternalServerError)
			log.Error("Failed to get performance records from store", "error", err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(records); err != nil {
			log.Error("Failed to encode records to JSON", "error", err)
		}
	}
}

// IngestHandler accepts one player's feed file as the request body. The
// player is named in the 'player' query parameter; 'season' falls back to
// the configured season.
func (s *Server) IngestHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		playerName := r.URL.Query().Get("player")
		if playerName == "" {
			http.Error(w, "Query parameter 'player' is required", http.StatusBadRequest)
			return
		}
		season := r.URL.Query().Get("season")
		if season == "" {
			season = s.Cfg.Season
		}

		result, err := s.Ingest.IngestFile(playerName, season, r.Body)
		if err != nil {
			if result.Unresolved {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnprocessableEntity)
				if encErr := json.NewEncoder(w).Encode(result); encErr != nil {
					log.Error("Failed to write response", "error", encErr)
				}
				return
			}
			log.Error("Failed to ingest feed file", "player", playerName, "error", err)
			http.Error(w, "Failed to ingest feed file", http.StatusInternalServerError)
			return
		}

		if err := s.pubsub.SendMessage(pubsub.EventIngestFile, result); err != nil {
			log.Error("Failed to publish ingest-file event", "player", playerName, "error", err)
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			log.Error("Failed to write response", "error", err)
		}
	}
}

func (s *Server) UpsertLineupHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var selection lineup.Selection
		if err := json.NewDecoder(r.Body).Decode(&selection); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if selection.UserID == "" || selection.WeekStart == "" {
			http.Error(w, "user_id and week_start are required", http.StatusBadRequest)
			return
		}
		// Validation is a separate, explicit step; a client-supplied status
		// is never honored here.
		selection.Status = lineup.StatusDraft

		if err := s.Lineups.UpsertSelection(&selection); err != nil {
			log.Error("Failed to upsert lineup selection", "user", selection.UserID, "week_start", selection.WeekStart, "error", err)
			http.Error(w, "Failed to save lineup", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "Lineup saved!")
	}
}

func (s *Server) ValidateLineupHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		userID := r.URL.Query().Get("user_id")
		weekStart := r.URL.Query().Get("week_start")
		if userID == "" || weekStart == "" {
			http.Error(w, "user_id and week_start are required", http.StatusBadRequest)
			return
		}

		if err := s.Lineups.ValidateSelection(userID, weekStart); err != nil {
			log.Error("Failed to validate lineup selection", "user", userID, "week_start", weekStart, "error", err)
			http.Error(w, "Failed to validate lineup", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "Lineup validated!")
	}
}

func (s *Server) ListLineupsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		weekStart := r.URL.Query().Get("week_start")
		var (
			selections []*lineup.Selection
			err        error
		)
		if weekStart != "" {
			selections, err = s.Lineups.GetSelectionsForWeek(weekStart)
		} else {
			selections, err = s.Lineups.GetValidatedSelections()
		}
		if err != nil {
			http.Error(w, "Failed to get lineups", http.StatusInternalServerError)
			log.Error("Failed to get lineups from store", "error", err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(selections); err != nil {
			log.Error("Failed to encode lineups to JSON", "error", err)
		}
	}
}

func (s *Server) UpsertTeamsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var teams []points.Team
		if err := json.NewDecoder(r.Body).Decode(&teams); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		if err := s.Points.UpsertTeams(teams); err != nil {
			log.Error("Failed to upsert teams", "error", err)
			http.Error(w, "Failed to save teams", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "Saved %d team(s)!", len(teams))
	}
}

func (s *Server) ReconcileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Starting points reconciliation...")
		isDryRun := isDryRunFromContext(r)

		report, err := s.Reconciler.Reconcile(isDryRun)
		if err != nil {
			log.Error("Points reconciliation failed", "error", err)
			http.Error(w, "Reconciliation failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			log.Error("Failed to encode run report to JSON", "error", err)
		}
		log.Info("Points reconciliation finished.")
	}
}

// LeaderboardHandler serves the ranked team leaderboard.
func (s *Server) LeaderboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		standings, err := s.Points.GetTeamStandings()
		if err != nil {
			http.Error(w, "Failed to get team standings", http.StatusInternalServerError)
			log.Error("Failed to get team standings from store", "error", err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(leaderboard.Rank(standings)); err != nil {
			log.Error("Failed to encode leaderboard to JSON", "error", err)
		}
	}
}

// NotifyLeaderboardHandler posts the current leaderboard to the configured
// notification channel.
func (s *Server) NotifyLeaderboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		standings, err := s.Points.GetTeamStandings()
		if err != nil {
			http.Error(w, "Failed to get team standings", http.StatusInternalServerError)
			log.Error("Failed to get team standings from store", "error", err)
			return
		}

		isDryRun := isDryRunFromContext(r)
		if err := s.Notifier.SendLeaderboard(leaderboard.Rank(standings), isDryRun); err != nil {
			log.Error("Failed to send leaderboard notification", "error", err)
			http.Error(w, "Failed to send leaderboard", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "Leaderboard sent!")
	}
}

// ReconcileRequestedHandler handles Pub/Sub push delivery of
// reconcile-requested events.
func (s *Server) ReconcileRequestedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("Failed to read request body", "error", err)
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}
		log.Debug("Received reconcile-requested message", "body", string(bodyBytes))
		// Define a small struct to decode the incoming JSON's `data` field
		var pubsubMsg struct {
			Subscription string `json:"subscription"`
			Message      struct {
				Data string `json:"data"` // base64-encoded message payload
			} `json:"message"`
		}

		// Parse the outer JSON to get `data`
		if err := json.Unmarshal(bodyBytes, &pubsubMsg); err != nil {
			log.Error("Failed to unmarshal wrapper JSON", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		// Decode base64 to raw MessagePack bytes
		rawData, err := base64.StdEncoding.DecodeString(pubsubMsg.Message.Data)
		if err != nil {
			log.Error("Failed to decode base64 data", "error", err)
			http.Error(w, "Invalid base64 data", http.StatusBadRequest)
			return
		}
		var request struct {
			DryRun bool `msgpack:"dry_run"`
		}
		if err := s.pubsub.ProcessMessage(rawData, &request); err != nil {
			log.Error("Failed to decode reconcile request payload", "error", err)
			http.Error(w, "Invalid message payload", http.StatusBadRequest)
			return
		}

		isDryRun := isDryRunFromContext(r) || request.DryRun
		if _, err := s.Reconciler.Reconcile(isDryRun); err != nil {
			log.Error("Points reconciliation failed", "error", err)
			http.Error(w, "Reconciliation failed", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("OK"))
	}
}
