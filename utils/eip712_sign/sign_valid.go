package eip712_sign

import (
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/storyicon/sigverify"
)

// VerifyPermissionSignature 重建授权记录的 typed data 并校验签名是否出自 address
func VerifyPermissionSignature(permission *PermissionData, contractAddress string, chainId int64, address, signature string) (bool, error) {
	typedData := PermissionTypedData(permission, contractAddress, chainId)
	valid, err := sigverify.VerifyTypedDataHexSignatureEx(
		ethcommon.HexToAddress(address),
		*typedData,
		signature,
	)
	return valid, err
}
