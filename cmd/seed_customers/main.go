// seed_customers genera un script SQL para poblar la tabla customers a
// partir del export CSV del sistema anterior (Excel guarda estos exports
// en ISO-8859-1, no UTF-8).
//
// Columnas esperadas: customer_name, phone, alternate_number, email,
// investment_id, investment_code, invested_date (YYYY-MM-DD), cheque_no,
// pan_number, portfolio, channel_partner, status, notes
//
// Uso: go run ./cmd/seed_customers [ruta/customers.csv]
// Por defecto busca customers.csv en el directorio actual.
// Escribe: migrations/002_seed_customers.sql
package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

const expectedColumns = 13

func main() {
	csvPath := "customers.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	reader := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	reader.FieldsPerRecord = expectedColumns

	header, err := reader.Read()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer encabezado: %v\n", err)
		os.Exit(1)
	}
	if !strings.EqualFold(strings.TrimSpace(header[0]), "customer_name") {
		fmt.Fprintf(os.Stderr, "Encabezado inesperado: %q\n", header[0])
		os.Exit(1)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "migrations", "002_seed_customers.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Clientes migrados del sistema anterior\n")
	out.WriteString("-- Generado desde " + filepath.Base(csvPath) + "\n\n")

	var total, skipped int
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Leer fila: %v\n", err)
			os.Exit(1)
		}
		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}
		// name y phone son obligatorios; el resto puede venir vacío
		if rec[0] == "" || rec[1] == "" {
			skipped++
			continue
		}
		status := rec[11]
		if status != "Active" && status != "Hold" && status != "Closed" {
			status = "Active"
		}
		investedDate := "NULL"
		if rec[6] != "" {
			investedDate = "'" + escapeSQL(rec[6]) + "'"
		}

		fmt.Fprintf(out, "INSERT INTO customers (customer_name, phone, alternate_number, email,\n")
		fmt.Fprintf(out, "  investment_id, investment_code, invested_date, cheque_no, pan_number,\n")
		fmt.Fprintf(out, "  portfolio, channel_partner, status, notes)\n")
		fmt.Fprintf(out, "VALUES ('%s', '%s', '%s', '%s', '%s', '%s', %s, '%s', '%s', '%s', '%s', '%s', '%s')",
			escapeSQL(rec[0]), escapeSQL(rec[1]), escapeSQL(rec[2]), escapeSQL(rec[3]),
			escapeSQL(rec[4]), escapeSQL(rec[5]), investedDate, escapeSQL(rec[7]),
			escapeSQL(strings.ToUpper(rec[8])), escapeSQL(rec[9]), escapeSQL(rec[10]),
			status, escapeSQL(rec[12]))
		out.WriteString(";\n")
		total++
	}

	fmt.Printf("Generado %s: %d clientes (%d filas omitidas)\n", outPath, total, skipped)
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
