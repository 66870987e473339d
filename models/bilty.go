package models

import "time"

// Payment modes.
const (
	PaymentPaid       = "paid"
	PaymentToPay      = "to-pay"
	PaymentFreeOfCost = "free-of-cost"
)

// Delivery types.
const (
	DeliveryDoor   = "door-delivery"
	DeliveryGodown = "godown-delivery"
)

// Bilty is one freight waybill, stored as a single flat row. The GR number is
// the human-facing business key; uniqueness is intended but not enforced.
// total_amount is always derived from freight plus the five charges and is
// recomputed right before persisting, never trusted from the client.
type Bilty struct {
	ID              int64     `json:"id" bson:"_id,omitempty" db:"id"`
	GRNo            string    `json:"gr_no" bson:"gr_no" db:"gr_no"`
	CityCode        string    `json:"city_code" bson:"city_code" db:"city_code"`
	City            string    `json:"city" bson:"city" db:"city"`
	TransportName   string    `json:"transport_name" bson:"transport_name" db:"transport_name"`
	TransportGST    string    `json:"transport_gst" bson:"transport_gst" db:"transport_gst"`
	TransportMobile string    `json:"transport_mobile" bson:"transport_mobile" db:"transport_mobile"`
	BiltyDate       time.Time `json:"bilty_date" bson:"bilty_date" db:"bilty_date"`

	ConsignorName   string `json:"consignor_name" bson:"consignor_name" db:"consignor_name"`
	ConsignorGST    string `json:"consignor_gst" bson:"consignor_gst" db:"consignor_gst"`
	ConsignorMobile string `json:"consignor_mobile" bson:"consignor_mobile" db:"consignor_mobile"`

	ConsigneeName   string `json:"consignee_name" bson:"consignee_name" db:"consignee_name"`
	ConsigneeGST    string `json:"consignee_gst" bson:"consignee_gst" db:"consignee_gst"`
	ConsigneeMobile string `json:"consignee_mobile" bson:"consignee_mobile" db:"consignee_mobile"`

	EwayBillAadharPan string    `json:"eway_bill_aadhar_pan" bson:"eway_bill_aadhar_pan" db:"eway_bill_aadhar_pan"`
	InvoiceNo         string    `json:"invoice_no" bson:"invoice_no" db:"invoice_no"`
	InvoiceDate       time.Time `json:"invoice_date" bson:"invoice_date" db:"invoice_date"`
	InvoiceValue      float64   `json:"invoice_value" bson:"invoice_value" db:"invoice_value"`
	PvtMarks          string    `json:"pvt_marks" bson:"pvt_marks" db:"pvt_marks"`

	Content      string  `json:"content" bson:"content" db:"content"`
	NoOfPackages int     `json:"no_of_packages" bson:"no_of_packages" db:"no_of_packages"`
	Weight       float64 `json:"weight" bson:"weight" db:"weight"`
	Rate         float64 `json:"rate" bson:"rate" db:"rate"`

	FreightAmount float64 `json:"freight_amount" bson:"freight_amount" db:"freight_amount"`
	PaymentMode   string  `json:"payment_mode" bson:"payment_mode" db:"payment_mode"`
	DeliveryType  string  `json:"delivery_type" bson:"delivery_type" db:"delivery_type"`

	LabourCharge float64 `json:"labour_charge" bson:"labour_charge" db:"labour_charge"`
	BiltyCharge  float64 `json:"bilty_charge" bson:"bilty_charge" db:"bilty_charge"`
	TollTax      float64 `json:"toll_tax" bson:"toll_tax" db:"toll_tax"`
	PF           float64 `json:"pf" bson:"pf" db:"pf"`
	OtherCharge  float64 `json:"other_charge" bson:"other_charge" db:"other_charge"`
	TotalAmount  float64 `json:"total_amount" bson:"total_amount" db:"total_amount"`

	Remarks   string    `json:"remarks" bson:"remarks" db:"remarks"`
	CreatedAt time.Time `json:"created_at" bson:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at" db:"updated_at"`
}
