package models

// Settings is the single company-wide configuration record at /configuracoes.
type Settings struct {
	CompanyName    string `json:"nomeEmpresa"`
	TaxID          string `json:"cnpj"`
	Address        string `json:"endereco"`
	Phone          string `json:"telefone"`
	Email          string `json:"email"`
	Logo           string `json:"logo"`
	Theme          string `json:"tema"`
	Notifications  bool   `json:"notificacoes"`
	AutoBackup     bool   `json:"backupAutomatico"`
	BackupInterval int    `json:"intervaloBackup"` // hours
}
