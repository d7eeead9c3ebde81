// Package importer loads end users from Excel or CSV files exported by the
// organization's previous tooling. Validation happens in two stages: the
// whole batch is checked before anything is written, then rows are persisted
// one by one so a single bad row cannot abort its siblings.
package importer

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"anshin-house-data/internal/domain"
	"anshin-house-data/internal/repository"
)

// RequiredHeaders is the exact header set the first row must contain.
// Order does not matter; any missing header rejects the whole file.
var RequiredHeaders = []string{
	"利用者ID",
	"氏名",
	"フリガナ",
	"性別",
	"生年月日",
	"郵便番号",
	"住所",
	"電話番号",
	"携帯電話番号",
	"物件名",
	"物件住所",
	"間取り",
	"家賃",
	"共益費",
	"敷金",
	"礼金",
	"契約日",
	"更新日",
	"見守りシステム",
	"代理納付",
	"備考",
}

var uidPattern = regexp.MustCompile(`^\d{4}-\d{4}$`)

// maxSampleMessages caps the failure detail in the result; the rest is
// summarized so a large failed batch does not flood the operator.
const maxSampleMessages = 5

// Result 取り込み結果
type Result struct {
	SuccessCount int      `json:"success_count"`
	FailureCount int      `json:"failure_count"`
	Messages     []string `json:"messages"` // 失敗サンプル（最大5件 + 残件数）
	Warnings     []string `json:"warnings"`
}

// Importer persists parsed rows through the users repository.
type Importer struct {
	users  repository.UsersRepository
	logger *zap.Logger
}

func New(users repository.UsersRepository, logger *zap.Logger) *Importer {
	return &Importer{users: users, logger: logger}
}

// row is one parsed data row with its 1-based source position (header row
// included, so the first data row is row 2).
type row struct {
	num      int
	user     *domain.EndUser
	warnings []string
}

// Import parses, validates and persists one uploaded file.
// Batch-level validation failures return an error and write nothing;
// per-row persistence failures are collected into the Result.
func (im *Importer) Import(ctx context.Context, filename string, data []byte) (*Result, error) {
	table, err := parseTable(filename, data)
	if err != nil {
		return nil, err
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("ファイルが空です")
	}

	cols, err := headerIndex(table[0])
	if err != nil {
		return nil, err
	}

	rows, warnings := im.assembleRows(table, cols)
	if err := validateBatch(rows); err != nil {
		return nil, err
	}

	return im.persist(ctx, rows, warnings)
}

// parseTable dispatches on the file extension and returns the raw 2D table.
func parseTable(filename string, data []byte) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		f, err := excelize.OpenReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("Excelファイルを読み込めません: %w", err)
		}
		defer f.Close()
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("Excelファイルにシートがありません")
		}
		rows, err := f.GetRows(sheets[0])
		if err != nil {
			return nil, fmt.Errorf("シート %q を読み込めません: %w", sheets[0], err)
		}
		return rows, nil
	case ".csv":
		r := csv.NewReader(bytes.NewReader(data))
		r.FieldsPerRecord = -1
		rows, err := r.ReadAll()
		if err != nil {
			return nil, fmt.Errorf("CSVファイルを読み込めません: %w", err)
		}
		return rows, nil
	}
	return nil, fmt.Errorf("対応していないファイル形式です（.xlsx または .csv）: %s", filename)
}

// headerIndex validates the header row and maps header name to column
// index. Every missing header is listed; there is no partial tolerance.
func headerIndex(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.TrimSpace(h)] = i
	}
	var missing []string
	for _, h := range RequiredHeaders {
		if _, ok := cols[h]; !ok {
			missing = append(missing, h)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("必須ヘッダーが不足しています: %s", strings.Join(missing, ", "))
	}
	return cols, nil
}

func (im *Importer) assembleRows(table [][]string, cols map[string]int) ([]row, []string) {
	var rows []row
	var warnings []string
	for i, raw := range table[1:] {
		num := i + 2 // 1-based, header included
		if isEmptyRow(raw) {
			continue
		}
		u, w := buildUser(raw, cols, num)
		warnings = append(warnings, w...)
		rows = append(rows, row{num: num, user: u, warnings: w})
	}
	return rows, warnings
}

func isEmptyRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func cell(raw []string, cols map[string]int, header string) string {
	i := cols[header]
	if i >= len(raw) {
		return ""
	}
	return strings.TrimSpace(raw[i])
}

// buildUser coerces one raw row into an EndUser. Coercion problems that
// have a safe fallback become warnings; everything else is left to batch
// validation.
func buildUser(raw []string, cols map[string]int, num int) (*domain.EndUser, []string) {
	var warnings []string
	warnf := func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf("行%d: ", num)+fmt.Sprintf(format, args...))
	}

	u := &domain.EndUser{
		UID:              cell(raw, cols, "利用者ID"),
		Name:             cell(raw, cols, "氏名"),
		Furigana:         cell(raw, cols, "フリガナ"),
		PostalCode:       cell(raw, cols, "郵便番号"),
		Address:          cell(raw, cols, "住所"),
		Phone:            cell(raw, cols, "電話番号"),
		PhoneMobile:      cell(raw, cols, "携帯電話番号"),
		PropertyName:     cell(raw, cols, "物件名"),
		PropertyAddress:  cell(raw, cols, "物件住所"),
		FloorPlan:        cell(raw, cols, "間取り"),
		MonitoringSystem: cell(raw, cols, "見守りシステム"),
		Notes:            cell(raw, cols, "備考"),
	}

	if code, ok := parseGender(cell(raw, cols, "性別")); ok {
		u.Gender = code
	} else {
		warnf("性別 %q を解釈できないため未設定として取り込みます", cell(raw, cols, "性別"))
	}

	if y, m, d, err := parseBirthDate(cell(raw, cols, "生年月日")); err != nil {
		warnf("%v", err)
	} else {
		u.BirthYear, u.BirthMonth, u.BirthDay = y, m, d
	}

	money := []struct {
		header string
		dst    **int64
	}{
		{"家賃", &u.Rent},
		{"共益費", &u.ManagementFee},
		{"敷金", &u.Deposit},
		{"礼金", &u.KeyMoney},
	}
	for _, m := range money {
		v, err := parseYen(cell(raw, cols, m.header))
		if err != nil {
			warnf("%s: %v", m.header, err)
			continue
		}
		if v != nil && *v < 0 {
			warnf("%sが負の値です: %d", m.header, *v)
		}
		*m.dst = v
	}

	if v, err := parseDate(cell(raw, cols, "契約日")); err != nil {
		warnf("契約日: %v", err)
	} else {
		u.ContractDate = v
	}
	if v, err := parseDate(cell(raw, cols, "更新日")); err != nil {
		warnf("更新日: %v", err)
	} else {
		u.RenewalDate = v
	}

	if parseBool(cell(raw, cols, "代理納付")) {
		u.ProxyPaymentYes = true
	} else if cell(raw, cols, "代理納付") != "" {
		u.ProxyPaymentNo = true
	}

	return u, warnings
}

// validateBatch checks the assembled rows as a whole before anything is
// persisted: required fields, UID shape, and duplicate UIDs within the
// incoming batch itself.
func validateBatch(rows []row) error {
	var problems []string
	uidRows := map[string][]int{}
	for _, r := range rows {
		if r.user.UID == "" {
			problems = append(problems, fmt.Sprintf("行%d（%s）: 利用者IDは必須です", r.num, r.user.Name))
		} else if !uidPattern.MatchString(r.user.UID) {
			problems = append(problems, fmt.Sprintf("行%d（%s）: 利用者ID %q の形式が不正です（0000-0000 形式）", r.num, r.user.Name, r.user.UID))
		} else {
			uidRows[r.user.UID] = append(uidRows[r.user.UID], r.num)
		}
		if r.user.Name == "" {
			problems = append(problems, fmt.Sprintf("行%d: 氏名は必須です", r.num))
		}
	}
	for uid, nums := range uidRows {
		if len(nums) < 2 {
			continue
		}
		for _, num := range nums {
			problems = append(problems, fmt.Sprintf("行%d: 利用者ID %s がファイル内で重複しています", num, uid))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%s", strings.Join(problems, "\n"))
	}
	return nil
}

// persist writes rows one by one. The stored UID set is fetched once and
// updated in memory as rows commit, so duplicates against prior data are
// caught without a per-row query, and a failing row never aborts the rest.
func (im *Importer) persist(ctx context.Context, rows []row, warnings []string) (*Result, error) {
	uids, err := im.users.ListUIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("登録済み利用者IDの取得に失敗しました: %w", err)
	}
	existing := make(map[string]struct{}, len(uids))
	for _, uid := range uids {
		existing[uid] = struct{}{}
	}

	res := &Result{Warnings: warnings}
	var failures []string
	for _, r := range rows {
		if _, dup := existing[r.user.UID]; dup {
			res.FailureCount++
			failures = append(failures, fmt.Sprintf("行%d（%s）: 利用者ID %s は既に登録されています", r.num, r.user.Name, r.user.UID))
			continue
		}
		if _, err := im.users.CreateUser(ctx, r.user); err != nil {
			res.FailureCount++
			failures = append(failures, fmt.Sprintf("行%d（%s）: 保存に失敗しました: %v", r.num, r.user.Name, err))
			im.logger.Error("failed to persist imported user",
				zap.Int("row", r.num),
				zap.String("uid", r.user.UID),
				zap.Error(err),
			)
			continue
		}
		existing[r.user.UID] = struct{}{}
		res.SuccessCount++
	}

	res.Messages = sampleMessages(failures, maxSampleMessages)
	return res, nil
}

func sampleMessages(msgs []string, max int) []string {
	if len(msgs) <= max {
		return msgs
	}
	out := append([]string{}, msgs[:max]...)
	return append(out, fmt.Sprintf("ほか%d件の失敗があります", len(msgs)-max))
}
