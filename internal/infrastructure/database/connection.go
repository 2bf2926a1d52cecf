package database

import (
	"net/url"
	"strings"
)

// PostgresDSN inclui o parâmetro TimeZone na DSN, repassado pelo pgx à sessão.
// Aceita tanto URL (postgres://...) quanto o formato chave=valor.
// Se a DSN já define o timezone ela é mantida.
func PostgresDSN(dsn, timezone string) string {
	timezone = strings.TrimSpace(timezone)
	if timezone == "" || strings.Contains(strings.ToLower(dsn), "timezone=") {
		return dsn
	}

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		u, err := url.Parse(dsn)
		if err != nil {
			return dsn
		}
		q := u.Query()
		q.Set("TimeZone", timezone)
		u.RawQuery = q.Encode()
		return u.String()
	}

	return strings.TrimSpace(dsn) + " TimeZone=" + quoteDSNValue(timezone)
}

// quoteDSNValue escapa um valor no formato chave=valor do libpq
func quoteDSNValue(v string) string {
	if !strings.ContainsAny(v, ` '\`) {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}
