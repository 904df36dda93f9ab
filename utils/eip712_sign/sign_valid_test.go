package eip712_sign

import (
	"testing"
)

func TestVerifyPermissionSignature(t *testing.T) {
	signer := newTestSigner(t)
	permission := newTestPermission()
	sign, err := CreatePermissionSignature(permission, testContractA, signer)
	if err != nil {
		t.Fatal(err)
	}

	result, err := VerifyPermissionSignature(permission, testContractA, signer.ChainId(), signer.Address().Hex(), sign)
	if err != nil {
		t.Error(err)
	}
	if !result {
		t.Error("signature should verify against the signer address")
	}

	// 其他地址校验不通过
	result, _ = VerifyPermissionSignature(permission, testContractA, signer.ChainId(), "0x70997970C51812dc3A010C7d01b50e0d17dc79C8", sign)
	if result {
		t.Error("signature should not verify against another address")
	}

	// 换合约地址校验不通过
	result, _ = VerifyPermissionSignature(permission, testContractB, signer.ChainId(), signer.Address().Hex(), sign)
	if result {
		t.Error("signature should not verify under another contract domain")
	}
}
