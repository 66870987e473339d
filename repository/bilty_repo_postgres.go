package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"transportbilty/models"
)

type PostgresBiltyRepo struct {
	DB *sql.DB
}

func NewPostgresBiltyRepo(db *sql.DB) *PostgresBiltyRepo {
	return &PostgresBiltyRepo{DB: db}
}

const biltyColumns = `id, gr_no, city_code, city, transport_name, transport_gst, transport_mobile,
	bilty_date, consignor_name, consignor_gst, consignor_mobile,
	consignee_name, consignee_gst, consignee_mobile,
	eway_bill_aadhar_pan, invoice_no, invoice_date, invoice_value, pvt_marks,
	content, no_of_packages, weight, rate, freight_amount, payment_mode, delivery_type,
	labour_charge, bilty_charge, toll_tax, pf, other_charge, total_amount,
	remarks, created_at, updated_at`

func scanBilty(row interface{ Scan(...interface{}) error }) (*models.Bilty, error) {
	var b models.Bilty
	err := row.Scan(
		&b.ID, &b.GRNo, &b.CityCode, &b.City, &b.TransportName, &b.TransportGST, &b.TransportMobile,
		&b.BiltyDate, &b.ConsignorName, &b.ConsignorGST, &b.ConsignorMobile,
		&b.ConsigneeName, &b.ConsigneeGST, &b.ConsigneeMobile,
		&b.EwayBillAadharPan, &b.InvoiceNo, &b.InvoiceDate, &b.InvoiceValue, &b.PvtMarks,
		&b.Content, &b.NoOfPackages, &b.Weight, &b.Rate, &b.FreightAmount, &b.PaymentMode, &b.DeliveryType,
		&b.LabourCharge, &b.BiltyCharge, &b.TollTax, &b.PF, &b.OtherCharge, &b.TotalAmount,
		&b.Remarks, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// orderClause builds the ORDER BY for a listing. id is the documented
// tie-break key so pages stay stable when the sort column has duplicates.
func orderClause(field string, ascending bool) string {
	dir := "DESC"
	if ascending {
		dir = "ASC"
	}
	return fmt.Sprintf("ORDER BY %s %s, id %s", field, dir, dir)
}

// searchClause ORs a case-insensitive substring match over the searchable
// columns. The term is passed as a single placeholder.
func searchClause(placeholder int) string {
	parts := make([]string, len(searchFields))
	for i, col := range searchFields {
		parts[i] = fmt.Sprintf("%s ILIKE $%d", col, placeholder)
	}
	return "(" + strings.Join(parts, " OR ") + ")"
}

// ------------------------ Create ------------------------

func (r *PostgresBiltyRepo) CreateBilty(ctx context.Context, bilty *models.Bilty) error {
	now := time.Now().UTC()
	if bilty.CreatedAt.IsZero() {
		bilty.CreatedAt = now
	}
	bilty.UpdatedAt = now

	return r.DB.QueryRowContext(ctx, `
		INSERT INTO transport_bilty(
			gr_no, city_code, city, transport_name, transport_gst, transport_mobile,
			bilty_date, consignor_name, consignor_gst, consignor_mobile,
			consignee_name, consignee_gst, consignee_mobile,
			eway_bill_aadhar_pan, invoice_no, invoice_date, invoice_value, pvt_marks,
			content, no_of_packages, weight, rate, freight_amount, payment_mode, delivery_type,
			labour_charge, bilty_charge, toll_tax, pf, other_charge, total_amount,
			remarks, created_at, updated_at
		)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,
			$19,$20,$21,$22,$23,$24,$25,$26,$27,$28,$29,$30,$31,$32,$33,$34)
		RETURNING id
	`,
		bilty.GRNo, bilty.CityCode, bilty.City, bilty.TransportName, bilty.TransportGST, bilty.TransportMobile,
		bilty.BiltyDate, bilty.ConsignorName, bilty.ConsignorGST, bilty.ConsignorMobile,
		bilty.ConsigneeName, bilty.ConsigneeGST, bilty.ConsigneeMobile,
		bilty.EwayBillAadharPan, bilty.InvoiceNo, bilty.InvoiceDate, bilty.InvoiceValue, bilty.PvtMarks,
		bilty.Content, bilty.NoOfPackages, bilty.Weight, bilty.Rate, bilty.FreightAmount, bilty.PaymentMode, bilty.DeliveryType,
		bilty.LabourCharge, bilty.BiltyCharge, bilty.TollTax, bilty.PF, bilty.OtherCharge, bilty.TotalAmount,
		bilty.Remarks, bilty.CreatedAt, bilty.UpdatedAt,
	).Scan(&bilty.ID)
}

// ------------------------ Reads ------------------------

func (r *PostgresBiltyRepo) GetBiltyByID(ctx context.Context, id int64) (*models.Bilty, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT `+biltyColumns+` FROM transport_bilty WHERE id = $1`, id)
	b, err := scanBilty(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return b, err
}

func (r *PostgresBiltyRepo) LatestByField(ctx context.Context, field, value string) (*models.Bilty, error) {
	if !IsSuggestField(field) {
		return nil, fmt.Errorf("lookup on unknown field %q", field)
	}
	row := r.DB.QueryRowContext(ctx, fmt.Sprintf(
		`SELECT %s FROM transport_bilty WHERE %s = $1 ORDER BY created_at DESC, id DESC LIMIT 1`,
		biltyColumns, field), value)
	b, err := scanBilty(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return b, err
}

func (r *PostgresBiltyRepo) MostRecentBilty(ctx context.Context) (*models.Bilty, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT `+biltyColumns+` FROM transport_bilty ORDER BY created_at DESC, id DESC LIMIT 1`)
	b, err := scanBilty(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return b, err
}

func (r *PostgresBiltyRepo) Suggest(ctx context.Context, field, prefix string, limit int) ([]string, error) {
	if !IsSuggestField(field) {
		return nil, fmt.Errorf("suggestions on unknown field %q", field)
	}
	rows, err := r.DB.QueryContext(ctx, fmt.Sprintf(
		`SELECT %s FROM transport_bilty WHERE %s ILIKE $1 ORDER BY %s ASC LIMIT $2`,
		field, field, field), prefix+"%", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Collapse duplicates keeping the sort order of first occurrence.
	seen := make(map[string]bool)
	values := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	return values, rows.Err()
}

// ------------------------ Listing ------------------------

func (r *PostgresBiltyRepo) ListBilty(ctx context.Context, p ListParams) ([]*models.Bilty, int64, error) {
	sortField := p.SortField
	if !IsSortField(sortField) {
		sortField = "bilty_date"
	}

	where := ""
	args := []interface{}{}
	if p.Search != "" {
		where = " WHERE " + searchClause(1)
		args = append(args, "%"+p.Search+"%")
	}

	var total int64
	if err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM transport_bilty`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (p.Page - 1) * p.PageSize
	query := fmt.Sprintf(`SELECT %s FROM transport_bilty%s %s LIMIT $%d OFFSET $%d`,
		biltyColumns, where, orderClause(sortField, p.SortAscending), len(args)+1, len(args)+2)
	args = append(args, p.PageSize, offset)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []*models.Bilty
	for rows.Next() {
		b, err := scanBilty(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, b)
	}
	return result, total, rows.Err()
}

// ------------------------ Delete ------------------------

func (r *PostgresBiltyRepo) DeleteBilty(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM transport_bilty WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.New("bilty not found")
	}
	return nil
}
