package entities

// CompanyStatus indica se a empresa ainda recebe respostas
type CompanyStatus string

const (
	CompanyStatusAberto  CompanyStatus = "Aberto"
	CompanyStatusFechado CompanyStatus = "Fechado"
)

func (s CompanyStatus) Valid() bool {
	return s == CompanyStatusAberto || s == CompanyStatusFechado
}

// Company representa uma empresa avaliada
type Company struct {
	Base
	RazaoSocial    string        `json:"razao_social" gorm:"column:razao_social"`
	NomeFantasia   string        `json:"nome_fantasia" gorm:"column:nome_fantasia"`
	CNPJ           string        `json:"cnpj" gorm:"column:cnpj;index"`
	Cidade         string        `json:"cidade" gorm:"column:cidade"`
	UF             string        `json:"uf" gorm:"column:uf;type:varchar(2)"`
	TotalEmployees int           `json:"total_employees" gorm:"column:total_employees"`
	AccessCode     string        `json:"access_code" gorm:"column:access_code;uniqueIndex"`
	Status         CompanyStatus `json:"status" gorm:"column:status"`

	// Relações
	Sectors []Sector `json:"sectors" gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
}

// Sector representa um setor (GHE) da empresa
type Sector struct {
	ID        string `json:"id" gorm:"primaryKey;column:id;type:varchar(36)"`
	CompanyID string `json:"company_id" gorm:"column:company_id;index"`
	Name      string `json:"name" gorm:"column:name"`
}

// HasSector verifica se o setor pertence à empresa
func (c *Company) HasSector(sectorID string) bool {
	for _, s := range c.Sectors {
		if s.ID == sectorID {
			return true
		}
	}
	return false
}

// SectorName retorna o nome do setor, ou vazio se não existir
func (c *Company) SectorName(sectorID string) string {
	for _, s := range c.Sectors {
		if s.ID == sectorID {
			return s.Name
		}
	}
	return ""
}
