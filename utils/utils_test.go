package utils

import (
	"math/big"
	"testing"
)

func TestIsValidAddress(t *testing.T) {
	if !IsValidAddress("0x0d15681C472082e33Aac426C588d9d0C2264014c") {
		t.Error("checksum address should be valid")
	}
	if IsValidAddress("0x0d15681C472082e33Aac426C588d9d0C2264014") {
		t.Error("short address should be invalid")
	}
	if IsValidAddress("0d15681C472082e33Aac426C588d9d0C2264014c") {
		t.Error("address without 0x prefix should be invalid")
	}
	if IsValidAddress(123) {
		t.Error("non string should be invalid")
	}
}

func TestSigRSV(t *testing.T) {
	sig := "0x45745117187b3593741b51d3ce1b1c57225124c1ee1d8b38f1a94bae5a29e45138ed3b7a1eb6fb40dd5ed50af18b59b6267c1f8e6ecf9d8d451c8e11f9ea36a31b"
	r, s, v := SigRSV(sig)
	if v != 27 {
		t.Errorf("v = %d, want 27", v)
	}
	if r == [32]byte{} || s == [32]byte{} {
		t.Error("r/s should not be zero")
	}

	// v 为 00/01 时归一化为 27/28
	_, _, v = SigRSV(sig[:len(sig)-2] + "01")
	if v != 28 {
		t.Errorf("v = %d, want 28", v)
	}
}

func TestToDecimalToWei(t *testing.T) {
	wei := ToWei("1.5", 9)
	if wei.Cmp(big.NewInt(1500000000)) != 0 {
		t.Errorf("wei = %s, want 1500000000", wei.String())
	}
	d := ToDecimal(wei, 9)
	if d.String() != "1.5" {
		t.Errorf("decimal = %s, want 1.5", d.String())
	}
}
