package tasks

import "testing"

func TestBitcoinAddress(t *testing.T) {
	fs := BitcoinAddress.Find("pay 1BvBMSEYstWetqTFn5Au4m4GFg7xJaNVN2 now")
	if len(fs) != 1 {
		t.Fatalf("expected bitcoin finding, got %d", len(fs))
	}
}

func TestPhoneNumber(t *testing.T) {
	fs := PhoneNumber.Find("call +34 911 234 567 today")
	if len(fs) != 1 {
		t.Fatalf("expected phone finding, got %v", fs)
	}
}

func TestPhoneNumber_RejectsTooFewDigits(t *testing.T) {
	if fs := PhoneNumber.Find("+1 23 45"); len(fs) != 0 {
		t.Fatalf("expected no finding, got %v", fs)
	}
}

func TestUSSocialSecurity(t *testing.T) {
	fs := USSocialSecurity.Find("ssn 536-90-4399")
	if len(fs) != 1 {
		t.Fatalf("expected ssn finding, got %v", fs)
	}
	if fs := USSocialSecurity.Find("ssn 000-12-3456"); len(fs) != 0 {
		t.Fatalf("area 000 never issued, got %v", fs)
	}
}

func TestEmailAddress(t *testing.T) {
	fs := EmailAddress.Find("contact jane.doe+tag@example.co.uk please")
	if len(fs) != 1 || fs[0].Value != "jane.doe+tag@example.co.uk" {
		t.Fatalf("findings = %v", fs)
	}
}
