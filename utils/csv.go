package utils

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// CSVRecord là một dòng dữ liệu xuất ra file CSV
type CSVRecord []string

// BuildCSV ghép header và records thành nội dung file CSV
func BuildCSV(header []string, records []CSVRecord) ([]byte, error) {
	buf := new(bytes.Buffer)
	w := csv.NewWriter(buf)

	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, rec := range records {
		if err := w.Write(rec); err != nil {
			return nil, fmt.Errorf("write csv record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FormatMoney format số tiền 2 chữ số thập phân cho CSV/report
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}
