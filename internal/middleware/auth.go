package middleware

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Akshaj-M/KinnrenWebsite-2/internal/auth"
	"github.com/Akshaj-M/KinnrenWebsite-2/internal/store"
)

// SessionCookieName is the cookie carrying the session token issued by the
// login endpoint.
const SessionCookieName = "kinnren_session"

// RequireAuth resolves the caller's identity and populates AuthContext.
// Two credentials are accepted: a signed bearer token from the external
// identity provider (HS256, user id in the subject claim), or a session
// cookie issued by the login endpoint. Either way the user record must
// exist; handlers only ever see the resolved user id.
func RequireAuth(st store.Storage, jwtSecret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ac, ok := bearerIdentity(r, st, jwtSecret); ok {
				next.ServeHTTP(w, r.WithContext(auth.WithAuth(r.Context(), ac)))
				return
			}

			ac, ok := sessionIdentity(r, st)
			if !ok {
				unauthorized(w)
				return
			}
			next.ServeHTTP(w, r.WithContext(auth.WithAuth(r.Context(), ac)))
		})
	}
}

func bearerIdentity(r *http.Request, st store.Storage, jwtSecret []byte) (auth.AuthContext, bool) {
	if len(jwtSecret) == 0 {
		return auth.AuthContext{}, false
	}
	header := r.Header.Get("Authorization")
	tokenString, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || tokenString == "" {
		return auth.AuthContext{}, false
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return auth.AuthContext{}, false
	}

	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return auth.AuthContext{}, false
	}
	user, err := st.GetUser(sub)
	if err != nil || user == nil {
		return auth.AuthContext{}, false
	}
	return auth.AuthContext{UserID: user.ID}, true
}

func sessionIdentity(r *http.Request, st store.Storage) (auth.AuthContext, bool) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return auth.AuthContext{}, false
	}

	sess, err := st.GetSessionByToken(cookie.Value)
	if err != nil || sess == nil {
		return auth.AuthContext{}, false
	}
	if time.Now().After(sess.ExpiresAt) {
		return auth.AuthContext{}, false
	}

	user, err := st.GetUser(sess.UserID)
	if err != nil || user == nil {
		return auth.AuthContext{}, false
	}
	return auth.AuthContext{UserID: user.ID, SessionToken: sess.Token}, true
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"message": "Unauthorized"})
}
