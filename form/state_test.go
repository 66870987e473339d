package form

import (
	"testing"
	"time"

	"transportbilty/models"
)

func testState() State {
	return NewState(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
}

func TestNewStateDefaults(t *testing.T) {
	s := testState()
	if got := s.Field(FieldBiltyDate); got != "2025-06-01" {
		t.Errorf("bilty_date default = %q", got)
	}
	if got := s.Field(FieldInvoiceDate); got != "2025-06-01" {
		t.Errorf("invoice_date default = %q", got)
	}
	if got := s.Field(FieldPaymentMode); got != models.PaymentToPay {
		t.Errorf("payment_mode default = %q", got)
	}
	if got := s.Field(FieldDeliveryType); got != models.DeliveryGodown {
		t.Errorf("delivery_type default = %q", got)
	}
	for _, f := range []string{FieldLabourCharge, FieldBiltyCharge, FieldTollTax, FieldPF, FieldOtherCharge, FieldTotalAmount} {
		if got := s.Field(f); got != "0" {
			t.Errorf("%s default = %q, want 0", f, got)
		}
	}
}

func TestSetRecomputesDerived(t *testing.T) {
	s := testState().Set(FieldWeight, "10").Set(FieldRate, "50")
	if got := s.Field(FieldFreightAmount); got != "500.00" {
		t.Fatalf("freight = %q, want 500.00", got)
	}
	s = s.Set(FieldLabourCharge, "20").Set(FieldBiltyCharge, "10").Set(FieldPF, "5")
	if got := s.Field(FieldTotalAmount); got != "535.00" {
		t.Fatalf("total = %q, want 535.00", got)
	}
}

func TestSetIsImmutable(t *testing.T) {
	s := testState()
	s2 := s.Set(FieldCity, "Mumbai")
	if s.Field(FieldCity) != "" {
		t.Fatal("Set mutated its receiver")
	}
	if s2.Field(FieldCity) != "Mumbai" {
		t.Fatal("Set did not apply")
	}
}

func TestTotalIndependentOfChangeOrder(t *testing.T) {
	a := testState().
		Set(FieldWeight, "10").
		Set(FieldRate, "50").
		Set(FieldLabourCharge, "20").
		Set(FieldOtherCharge, "2.50")
	b := testState().
		Set(FieldOtherCharge, "2.50").
		Set(FieldLabourCharge, "20").
		Set(FieldRate, "50").
		Set(FieldWeight, "10")
	if a.Field(FieldTotalAmount) != b.Field(FieldTotalAmount) {
		t.Fatalf("order-dependent total: %q vs %q",
			a.Field(FieldTotalAmount), b.Field(FieldTotalAmount))
	}
	if got := a.Field(FieldTotalAmount); got != "522.50" {
		t.Fatalf("total = %q, want 522.50", got)
	}
}

func TestBlankFactorKeepsManualFreight(t *testing.T) {
	s := testState().Set(FieldWeight, "10").Set(FieldRate, "50")
	// user clears weight while editing; freight must not be wiped
	s = s.Set(FieldWeight, "")
	if got := s.Field(FieldFreightAmount); got != "500.00" {
		t.Fatalf("freight after clearing weight = %q, want 500.00", got)
	}
}

func TestApplyPatchNonClobber(t *testing.T) {
	s := testState().Set(FieldConsignorGST, "X")
	s = s.ApplyPatch(map[string]string{
		FieldConsignorGST:    "",
		FieldConsignorMobile: "9876500000",
	})
	if got := s.Field(FieldConsignorGST); got != "X" {
		t.Fatalf("empty fetched value clobbered consignor_gst: %q", got)
	}
	if got := s.Field(FieldConsignorMobile); got != "9876500000" {
		t.Fatalf("non-empty fetched value not applied: %q", got)
	}
}

func TestApplyPatchWithRateRecomputesFreight(t *testing.T) {
	s := testState().Set(FieldWeight, "4")
	s = s.ApplyPatch(map[string]string{FieldRate: "25"})
	if got := s.Field(FieldFreightAmount); got != "100.00" {
		t.Fatalf("freight after rate patch = %q, want 100.00", got)
	}
	if got := s.Field(FieldTotalAmount); got != "100.00" {
		t.Fatalf("total after rate patch = %q, want 100.00", got)
	}
}

func TestSeedChargesOnlyFillsDefaults(t *testing.T) {
	s := testState().Set(FieldLabourCharge, "15") // user edit before seed resolves
	s = s.SeedCharges("20.00", "10.00", "", "5.00")
	if got := s.Field(FieldLabourCharge); got != "15" {
		t.Errorf("seed overwrote user-edited labour_charge: %q", got)
	}
	if got := s.Field(FieldBiltyCharge); got != "10.00" {
		t.Errorf("bilty_charge not seeded: %q", got)
	}
	if got := s.Field(FieldTollTax); got != "0" {
		t.Errorf("empty seed touched toll_tax: %q", got)
	}
	if got := s.Field(FieldPF); got != "5.00" {
		t.Errorf("pf not seeded: %q", got)
	}
	if got := s.Field(FieldTotalAmount); got != "30.00" {
		t.Errorf("total after seeding = %q, want 30.00", got)
	}
}

func TestToBilty(t *testing.T) {
	s := testState().
		Set(FieldGRNo, "GR-1001").
		Set(FieldCityCode, "MUM").
		Set(FieldCity, "Mumbai").
		Set(FieldWeight, "10").
		Set(FieldRate, "50").
		Set(FieldLabourCharge, "20").
		Set(FieldBiltyCharge, "10").
		Set(FieldPF, "5").
		Set(FieldNoOfPackages, "3")

	b := s.ToBilty()
	if b.GRNo != "GR-1001" || b.City != "Mumbai" {
		t.Fatalf("text fields lost: %+v", b)
	}
	if b.Weight != 10 || b.Rate != 50 || b.NoOfPackages != 3 {
		t.Fatalf("numeric fields: weight=%v rate=%v packages=%v", b.Weight, b.Rate, b.NoOfPackages)
	}
	if b.FreightAmount != 500 {
		t.Fatalf("freight = %v, want 500", b.FreightAmount)
	}
	if b.TotalAmount != 535 {
		t.Fatalf("total = %v, want 535", b.TotalAmount)
	}
	if got := b.BiltyDate.Format("2006-01-02"); got != "2025-06-01" {
		t.Fatalf("bilty_date = %s", got)
	}
}

func TestToBiltyKeepsManualFreight(t *testing.T) {
	// weight and rate derive 500, then the user overrides the freight by hand
	s := testState().
		Set(FieldWeight, "10").
		Set(FieldRate, "50").
		Set(FieldFreightAmount, "450").
		Set(FieldLabourCharge, "20")

	b := s.ToBilty()
	if b.FreightAmount != 450 {
		t.Fatalf("freight = %v, want the manual 450, not weight*rate", b.FreightAmount)
	}
	if b.TotalAmount != 470 {
		t.Fatalf("total = %v, want 470", b.TotalAmount)
	}
	if b.TotalAmount != b.FreightAmount+b.LabourCharge+b.BiltyCharge+b.TollTax+b.PF+b.OtherCharge {
		t.Fatalf("stored total %v does not equal freight %v plus charges", b.TotalAmount, b.FreightAmount)
	}
}
