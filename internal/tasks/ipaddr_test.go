package tasks

import "testing"

func TestIPAddress(t *testing.T) {
	fs := IPAddress.Find("host 192.168.0.1 up")
	if len(fs) != 1 || fs[0].Value != "192.168.0.1" {
		t.Fatalf("findings = %v", fs)
	}
}

func TestIPAddress_RejectsOutOfRangeOctet(t *testing.T) {
	if fs := IPAddress.Find("bogus 300.1.2.3"); len(fs) != 0 {
		t.Fatalf("expected no finding, got %v", fs)
	}
}
