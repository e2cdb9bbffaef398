package report

import (
	"encoding/json"
	"sort"
	"strings"
)

// Type identifies one report screen of the back office.
type Type string

const (
	FirmasFecha            Type = "firmas_fecha"
	FirmasCaducar          Type = "firmas_caducar"
	FacturasFecha          Type = "facturas_fecha"
	FirmasGeneradasFactura Type = "firmas_generadas_factura"
	FiltroDistribuidores   Type = "filtro_distribuidores"
	FirmasPorEnganchador   Type = "firmas_por_enganchador"
	FirmasVendidas         Type = "firmas_vendidas"
	PagosFacturadores      Type = "pagos_facturadores"
	AuditoriaEmisores      Type = "auditoria_emisores"
	PlantillasCaducar      Type = "plantillas_caducar"
)

// ParseType resolves a report type identifier. The second return value is
// false for unknown identifiers.
func ParseType(s string) (Type, bool) {
	t := Type(strings.TrimSpace(strings.ToLower(s)))
	if _, ok := schemas[t]; ok {
		return t, true
	}
	return "", false
}

// Field declares one canonical column: its name, the ordered list of
// source-key spellings it may arrive under, and its default kind.
// The field name itself is always probed first, so mapping an
// already-canonical row is idempotent.
type Field struct {
	Name       string
	Candidates []string
	Numeric    bool
}

// Schema is the declared candidate-key table for one report type.
// The field order is the export column order.
type Schema struct {
	Type   Type
	Sheet  string
	Fields []Field
}

// Headers returns the export header row, fields in declared order.
func (s *Schema) Headers() []string {
	headers := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		headers[i] = f.Name
	}
	return headers
}

// MapRow builds a canonical row from an arbitrary raw row. A raw row that
// is a JSON-encoded string gets a single decode attempt; if that fails the
// raw value is returned untouched. Non-object, non-string values pass
// through unchanged.
func (s *Schema) MapRow(raw any) any {
	if str, ok := raw.(string); ok {
		var decoded any
		if err := json.Unmarshal([]byte(str), &decoded); err != nil {
			return raw
		}
		raw = decoded
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return raw
	}

	folded := foldKeys(obj)
	row := make(map[string]any, len(s.Fields))
	for _, f := range s.Fields {
		value, found := lookup(obj, folded, f.Name, f.Candidates)
		if !found || value == nil {
			if f.Numeric {
				row[f.Name] = 0
			} else {
				row[f.Name] = ""
			}
			continue
		}
		row[f.Name] = value
	}
	return row
}

// foldKeys indexes the object's non-nil values under lowercased keys.
// Source keys that collide after folding resolve to the lexicographically
// first one, keeping the case-insensitive fallback deterministic.
func foldKeys(obj map[string]any) map[string]any {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	folded := make(map[string]any, len(obj))
	for _, k := range keys {
		lower := strings.ToLower(k)
		if _, taken := folded[lower]; taken || obj[k] == nil {
			continue
		}
		folded[lower] = obj[k]
	}
	return folded
}

// lookup probes candidate key spellings in priority order: the canonical
// name first, then every declared candidate, each exact before falling
// back to the folded case-insensitive index.
func lookup(obj, folded map[string]any, name string, candidates []string) (any, bool) {
	probe := make([]string, 0, len(candidates)+1)
	probe = append(probe, name)
	probe = append(probe, candidates...)

	for _, k := range probe {
		if v, ok := obj[k]; ok && v != nil {
			return v, true
		}
	}
	for _, k := range probe {
		if v, ok := folded[strings.ToLower(k)]; ok {
			return v, true
		}
	}
	return nil, false
}
