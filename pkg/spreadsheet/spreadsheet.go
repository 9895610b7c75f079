// Package spreadsheet 把 CSV / XLS / XLSX 读成统一的二维字符串表
package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLS  Format = "xls"
	FormatXLSX Format = "xlsx"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format, expected csv, xls or xlsx")
	ErrContentMismatch   = errors.New("file content does not match its extension")
	ErrEmpty             = errors.New("file contains no rows")
)

var (
	zipMagic = []byte("PK\x03\x04")
	oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
	utf8BOM  = []byte{0xEF, 0xBB, 0xBF}
)

// Table 第一行作为表头，其余为数据行；行号从 2 开始对应原文件
type Table struct {
	Header []string
	Rows   [][]string
}

// FormatOf 按扩展名判断格式
func FormatOf(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return FormatCSV, nil
	case ".xls":
		return FormatXLS, nil
	case ".xlsx":
		return FormatXLSX, nil
	}
	return "", ErrUnsupportedFormat
}

// ContentType 归档上传文件时使用的 MIME
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv"
	case FormatXLS:
		return "application/vnd.ms-excel"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/octet-stream"
}

// Parse 读取整张表，表头统一去空白并转小写
func Parse(filename string, content []byte) (*Table, error) {
	format, err := FormatOf(filename)
	if err != nil {
		return nil, err
	}
	if err := sniff(format, content); err != nil {
		return nil, err
	}

	var rows [][]string
	switch format {
	case FormatCSV:
		rows, err = readCSV(content)
	case FormatXLS:
		rows, err = readXLS(content)
	case FormatXLSX:
		rows, err = readXLSX(content)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", format, err)
	}
	if len(rows) == 0 {
		return nil, ErrEmpty
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = NormalizeHeader(h)
	}
	return &Table{Header: header, Rows: rows[1:]}, nil
}

// NormalizeHeader 去掉首尾空白、合并内部空白并转小写
func NormalizeHeader(h string) string {
	return strings.ToLower(strings.Join(strings.Fields(h), " "))
}

// Index 返回第一个匹配的列下标，找不到为 -1
func (t *Table) Index(names ...string) int {
	for _, name := range names {
		for i, h := range t.Header {
			if h == name {
				return i
			}
		}
	}
	return -1
}

// Cell 越界返回空串，结果去掉首尾空白
func Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// IsBlank 整行都是空白
func IsBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func sniff(format Format, content []byte) error {
	switch format {
	case FormatXLSX:
		if !bytes.HasPrefix(content, zipMagic) {
			return ErrContentMismatch
		}
	case FormatXLS:
		if !bytes.HasPrefix(content, oleMagic) {
			return ErrContentMismatch
		}
	case FormatCSV:
		if len(content) == 0 {
			return ErrEmpty
		}
		if !strings.HasPrefix(http.DetectContentType(content), "text/") {
			return ErrContentMismatch
		}
	}
	return nil
}

func readCSV(content []byte) ([][]string, error) {
	content = bytes.TrimPrefix(content, utf8BOM)

	r := csv.NewReader(bytes.NewReader(content))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.Comma = detectDelimiter(content)

	var rows [][]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

// detectDelimiter 欧洲地区 Excel 导出的 CSV 常用分号
func detectDelimiter(content []byte) rune {
	line := content
	if i := bytes.IndexByte(content, '\n'); i >= 0 {
		line = content[:i]
	}
	if bytes.Count(line, []byte(";")) > bytes.Count(line, []byte(",")) {
		return ';'
	}
	return ','
}

func readXLSX(content []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrEmpty
		}
		sheet = sheets[0]
	}
	return f.GetRows(sheet)
}

func readXLS(content []byte) ([][]string, error) {
	wb, err := xls.OpenReader(bytes.NewReader(content), "utf-8")
	if err != nil {
		return nil, err
	}
	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, ErrEmpty
	}

	var rows [][]string
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			// 保留空行占位，使行号与原文件一致
			rows = append(rows, []string{})
			continue
		}
		cells := make([]string, row.LastCol())
		for c := range cells {
			cells[c] = row.Col(c)
		}
		rows = append(rows, cells)
	}
	return rows, nil
}
