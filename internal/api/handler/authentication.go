package handler

import (
	"net/http"

	"github.com/vfg2006/seller-reports-api/internal/usecases/authenticating"
	"github.com/vfg2006/seller-reports-api/pkg/apiErrors"
)

type LoginRequest struct {
	SellerID string `json:"seller_id"`
	APIKey   string `json:"api_key"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		token, err := service.Login(req.SellerID, req.APIKey)
		if err != nil {
			writeServiceError(w, r, err, apiErrors.ErrInvalidCredentials, "login failed")
			return
		}

		writeJSON(w, r, http.StatusOK, LoginResponse{Token: token})
	}
}
