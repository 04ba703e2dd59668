package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/cbodonnell/collide/pkg/log"
	"github.com/cbodonnell/collide/pkg/messages"
	"github.com/cbodonnell/collide/pkg/repositories"
	"github.com/cbodonnell/collide/pkg/repositories/models"
	"github.com/cbodonnell/collide/pkg/scene"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const (
	// MaxSceneSize is the largest scene body accepted, in bytes
	MaxSceneSize = 1 << 20
)

type CreateSceneResponse struct {
	ID string `json:"id"`
}

type OverlapsResponse struct {
	Scene    string          `json:"scene"`
	Overlaps []scene.Overlap `json:"overlaps"`
}

func HandleCreateScene(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := readScene(w, r)
		if err != nil {
			log.Debug("failed to read scene: %v", err)
			http.Error(w, fmt.Sprintf("Invalid scene: %v", err), http.StatusBadRequest)
			return
		}

		data, err := messages.SerializeScene(s)
		if err != nil {
			log.Error("failed to serialize scene: %v", err)
			http.Error(w, "Failed to serialize scene", http.StatusInternalServerError)
			return
		}

		model := &models.Scene{
			ID:        uuid.NewString(),
			Name:      s.Name,
			Data:      data,
			CreatedAt: time.Now().UTC(),
		}
		if err := repository.SaveScene(r.Context(), model); err != nil {
			log.Error("failed to save scene: %v", err)
			http.Error(w, "Failed to save scene", http.StatusInternalServerError)
			return
		}

		log.Info("Saved scene %s (%q) with %d objects", model.ID, model.Name, len(s.Objects))
		writeJSON(w, http.StatusCreated, CreateSceneResponse{ID: model.ID})
	}
}

func HandleListScenes(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scenes, err := repository.ListScenes(r.Context())
		if err != nil {
			log.Error("failed to list scenes: %v", err)
			http.Error(w, "Failed to list scenes", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, scenes)
	}
}

func HandleGetScene(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := loadScene(w, r, repository)
		if !ok {
			return
		}

		data, err := s.Marshal()
		if err != nil {
			log.Error("failed to encode scene: %v", err)
			http.Error(w, "Failed to encode scene", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/yaml")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(data); err != nil {
			log.Error("failed to write scene: %v", err)
		}
	}
}

func HandleDeleteScene(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sceneID, err := parseSceneID(r)
		if err != nil {
			http.Error(w, "Failed to parse sceneID", http.StatusBadRequest)
			return
		}

		if err := repository.DeleteScene(r.Context(), sceneID); err != nil {
			if repositories.IsNotFound(err) {
				http.Error(w, "Scene not found", http.StatusNotFound)
				return
			}
			log.Error("failed to delete scene: %v", err)
			http.Error(w, "Failed to delete scene", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func HandleSceneOverlaps(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		wantTranslation, err := parseTranslation(r)
		if err != nil {
			http.Error(w, "Failed to parse translation", http.StatusBadRequest)
			return
		}
		s, ok := loadScene(w, r, repository)
		if !ok {
			return
		}
		writeOverlaps(w, s, wantTranslation)
	}
}

// HandleOverlaps answers overlaps for a scene in the request body without storing it
func HandleOverlaps() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		wantTranslation, err := parseTranslation(r)
		if err != nil {
			http.Error(w, "Failed to parse translation", http.StatusBadRequest)
			return
		}
		s, err := readScene(w, r)
		if err != nil {
			log.Debug("failed to read scene: %v", err)
			http.Error(w, fmt.Sprintf("Invalid scene: %v", err), http.StatusBadRequest)
			return
		}
		writeOverlaps(w, s, wantTranslation)
	}
}

func readScene(w http.ResponseWriter, r *http.Request) (*scene.Scene, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxSceneSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %v", err)
	}
	return scene.Parse(body)
}

// loadScene writes the error response itself and reports whether to continue.
func loadScene(w http.ResponseWriter, r *http.Request, repository repositories.Repository) (*scene.Scene, bool) {
	sceneID, err := parseSceneID(r)
	if err != nil {
		http.Error(w, "Failed to parse sceneID", http.StatusBadRequest)
		return nil, false
	}

	model, err := repository.LoadScene(r.Context(), sceneID)
	if err != nil {
		if repositories.IsNotFound(err) {
			http.Error(w, "Scene not found", http.StatusNotFound)
			return nil, false
		}
		log.Error("failed to load scene: %v", err)
		http.Error(w, "Failed to load scene", http.StatusInternalServerError)
		return nil, false
	}

	s, err := messages.DeserializeScene(model.Data)
	if err != nil {
		log.Error("failed to deserialize scene %s: %v", sceneID, err)
		http.Error(w, "Failed to deserialize scene", http.StatusInternalServerError)
		return nil, false
	}
	return s, true
}

func writeOverlaps(w http.ResponseWriter, s *scene.Scene, wantTranslation bool) {
	world, err := s.Build()
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid scene: %v", err), http.StatusBadRequest)
		return
	}
	defer world.Close()

	writeJSON(w, http.StatusOK, OverlapsResponse{
		Scene:    s.Name,
		Overlaps: world.Overlaps(wantTranslation),
	})
}

func parseSceneID(r *http.Request) (string, error) {
	id, err := uuid.Parse(mux.Vars(r)["sceneID"])
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func parseTranslation(r *http.Request) (bool, error) {
	value := r.URL.Query().Get("translation")
	if value == "" {
		return false, nil
	}
	return strconv.ParseBool(value)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to encode response: %v", err)
	}
}
