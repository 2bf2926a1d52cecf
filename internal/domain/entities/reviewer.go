package entities

import "time"

// MainReviewerID é o identificador do perfil do Responsável Técnico
const MainReviewerID = "main_rt"

// ReviewerProfile representa o Responsável Técnico (psicólogo) que assina os laudos
type ReviewerProfile struct {
	ID           string    `json:"-" gorm:"primaryKey;column:id;type:varchar(36)"`
	NomeCompleto string    `json:"nome_completo" gorm:"column:nome_completo"`
	CRP          string    `json:"crp" gorm:"column:crp"`
	Email        string    `json:"email" gorm:"column:email"`
	Telefone     string    `json:"telefone" gorm:"column:telefone"`
	Cidade       string    `json:"cidade" gorm:"column:cidade"`
	UF           string    `json:"uf" gorm:"column:uf;type:varchar(2)"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"column:updated_at"`
}
