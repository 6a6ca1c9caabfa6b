package workspace

import (
	"encoding/json"
	"net/http"

	"github.com/ClinicaFlow/api-financeiro/internal/auth"
	"github.com/ClinicaFlow/api-financeiro/internal/utils"
	"gorm.io/gorm"
)

// request DTOs
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	WorkspaceName string `json:"workspaceName"`
	Document      string `json:"document"`
	AdminName     string `json:"adminName"`
	Email         string `json:"email"`
	Password      string `json:"password"`
}

// Handler encapsula DB e repository
type Handler struct {
	DB   *gorm.DB
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repo: NewRepository(db)}
}

// Login gera um JWT para credenciais válidas
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	user, err := h.Repo.FindUserByEmail(req.Email)
	if err != nil {
		http.Error(w, "credenciais inválidas", http.StatusUnauthorized)
		return
	}

	if !utils.CheckSenha(user.Password, req.Password) {
		http.Error(w, "senha incorreta", http.StatusUnauthorized)
		return
	}

	token, err := auth.GerarToken(user.ID, user.WorkspaceID, user.IsAdmin)
	if err != nil {
		http.Error(w, "erro ao gerar token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"token": token})
}

// Register cadastra um novo workspace com seu usuário admin (livre de autenticação)
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if req.WorkspaceName == "" || req.Email == "" || req.Password == "" {
		http.Error(w, "workspaceName, email e password são obrigatórios", http.StatusBadRequest)
		return
	}

	hash, err := utils.HashSenha(req.Password)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}

	ws := &Workspace{Name: req.WorkspaceName, Document: req.Document}
	admin := &User{Name: req.AdminName, Email: req.Email, Password: hash}
	if err := h.Repo.CreateWithAdmin(ws, admin); err != nil {
		http.Error(w, "erro ao criar workspace", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(ws)
}

// Me devolve o workspace do token autenticado.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	ws, err := h.Repo.FindByID(auth.WorkspaceID(r))
	if err != nil {
		http.Error(w, "Workspace não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ws)
}
