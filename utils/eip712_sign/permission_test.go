package eip712_sign

import (
	"math/big"
	"regexp"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// 本地测试私钥（hardhat account #0），仅用于单元测试
const testPrivateKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

const (
	testContractA = "0x0d15681C472082e33Aac426C588d9d0C2264014c"
	testContractB = "0x1483B1F634DBA75AeaE60da7f01A679aabd5ee2c"
)

var signaturePattern = regexp.MustCompile(`^0x[0-9a-fA-F]{130}$`)

func newTestSigner(t *testing.T) *Signer {
	privateKey, err := crypto.HexToECDSA(testPrivateKey)
	if err != nil {
		t.Fatal(err)
	}
	return NewSigner(privateKey, 1480)
}

func newTestPermission() *PermissionData {
	return &PermissionData{
		Nonce:     big.NewInt(0),
		GranteeId: big.NewInt(1),
		Grant:     "grantUrl",
		FileIds:   []*big.Int{big.NewInt(1654309)},
	}
}

func TestCreatePermissionSignature(t *testing.T) {
	signer := newTestSigner(t)
	sign, err := CreatePermissionSignature(newTestPermission(), testContractA, signer)
	if err != nil {
		t.Fatal(err)
	}
	t.Log(sign)
	if len(sign) != 132 {
		t.Errorf("signature length = %d, want 132", len(sign))
	}
	if !signaturePattern.MatchString(sign) {
		t.Errorf("signature %s does not match 0x + 130 hex chars", sign)
	}
	raw, err := hexutil.Decode(sign)
	if err != nil {
		t.Fatal(err)
	}
	if len(raw) != 65 {
		t.Errorf("signature raw length = %d, want 65", len(raw))
	}
	if raw[64] != 27 && raw[64] != 28 {
		t.Errorf("recovery byte = %d, want 27 or 28", raw[64])
	}
}

// 同一条授权记录绑定到不同合约地址，签名必须不同
func TestCreatePermissionSignatureDomainSeparation(t *testing.T) {
	signer := newTestSigner(t)
	signA, err := CreatePermissionSignature(newTestPermission(), testContractA, signer)
	if err != nil {
		t.Fatal(err)
	}
	signB, err := CreatePermissionSignature(newTestPermission(), testContractB, signer)
	if err != nil {
		t.Fatal(err)
	}
	if !signaturePattern.MatchString(signB) {
		t.Errorf("signature %s does not match 0x + 130 hex chars", signB)
	}
	if signA == signB {
		t.Error("signatures for different contract addresses should differ")
	}
}

func TestCreatePermissionSignatureEmptyFileIds(t *testing.T) {
	signer := newTestSigner(t)
	permission := newTestPermission()
	permission.FileIds = nil
	sign, err := CreatePermissionSignature(permission, testContractA, signer)
	if err != nil {
		t.Fatal(err)
	}
	if len(sign) != 132 || !signaturePattern.MatchString(sign) {
		t.Errorf("empty fileIds should still produce a well-formed signature, got %s", sign)
	}
}

func TestCreatePermissionSignatureInvalidParameter(t *testing.T) {
	signer := newTestSigner(t)
	if _, err := CreatePermissionSignature(nil, testContractA, signer); err == nil {
		t.Error("nil permission should fail")
	}
	if _, err := CreatePermissionSignature(newTestPermission(), testContractA, nil); err == nil {
		t.Error("nil signer should fail")
	}
	if _, err := CreatePermissionSignature(&PermissionData{Grant: "grantUrl"}, testContractA, signer); err == nil {
		t.Error("permission without nonce/granteeId should fail")
	}
}
