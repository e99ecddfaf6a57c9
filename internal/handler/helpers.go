package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Akshaj-M/KinnrenWebsite-2/internal/model"
	"github.com/Akshaj-M/KinnrenWebsite-2/internal/store"
	"github.com/Akshaj-M/KinnrenWebsite-2/internal/validate"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// writeValidation reports every field failure in one response.
func writeValidation(w http.ResponseWriter, errs validate.Errors) {
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"message": "Invalid data",
		"errors":  errs,
	})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid data")
		return false
	}
	return true
}

// parseIDParam reads the {id} path value as a positive integer.
func parseIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeMessage(w, http.StatusBadRequest, "Invalid ID")
		return 0, false
	}
	return id, true
}

// requireMembership gates family-scoped routes; on failure it writes 403
// and returns false. Nonexistent families fall through to the same 403 so
// ids cannot be probed.
func requireMembership(w http.ResponseWriter, st store.Storage, userID string, familyID int64) bool {
	membership, err := st.GetUserFamilyMembership(userID, familyID)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to verify family membership")
		return false
	}
	if membership == nil {
		writeMessage(w, http.StatusForbidden, "Access denied")
		return false
	}
	return true
}

// requireAdmin gates admin-only routes within a family.
func requireAdmin(w http.ResponseWriter, st store.Storage, userID string, familyID int64) bool {
	membership, err := st.GetUserFamilyMembership(userID, familyID)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to verify family membership")
		return false
	}
	if membership == nil {
		writeMessage(w, http.StatusForbidden, "Access denied")
		return false
	}
	if membership.Role != model.RoleAdmin {
		writeMessage(w, http.StatusForbidden, "Admin access required")
		return false
	}
	return true
}

func isDuplicateMembership(err error) bool {
	return errors.Is(err, store.ErrDuplicateMembership)
}
