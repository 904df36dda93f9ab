package eip712_sign

import (
	"errors"
	"math/big"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

const (
	DomainName    = "DataPermissions"
	DomainVersion = "1"

	PrimaryTypePermission = "Permission"
)

// PermissionData 授权记录：granteeId 通过 grant 地址访问 fileIds 对应的文件
type PermissionData struct {
	Nonce     *big.Int
	GranteeId *big.Int
	Grant     string
	FileIds   []*big.Int
}

// CreatePermissionSignature 对授权记录做 EIP-712 签名，合约地址进入签名域
// 返回 0x 前缀的 65 字节签名（r‖s‖v，共 130 个 hex 字符）
func CreatePermissionSignature(permission *PermissionData, contractAddress string, signer *Signer) (string, error) {
	if permission == nil || signer == nil {
		return "", errors.New("invalid parameter")
	}
	if permission.Nonce == nil || permission.GranteeId == nil {
		return "", errors.New("invalid permission data")
	}
	typedData := PermissionTypedData(permission, contractAddress, signer.chainId)
	signature, err := SignWithEip712(signer.privateKey, typedData)
	if err != nil {
		return "", err
	}
	return hexutil.Encode(signature), nil
}

func PermissionTypedData(permission *PermissionData, contractAddress string, chainId int64) *apitypes.TypedData {
	fileIds := make([]interface{}, 0, len(permission.FileIds))
	for _, id := range permission.FileIds {
		fileIds = append(fileIds, id.String())
	}
	return &apitypes.TypedData{
		Types: apitypes.Types{
			"EIP712Domain": []apitypes.Type{
				{Name: "name", Type: "string"},
				{Name: "version", Type: "string"},
				{Name: "chainId", Type: "uint256"},
				{Name: "verifyingContract", Type: "address"},
			},
			PrimaryTypePermission: []apitypes.Type{
				{Name: "nonce", Type: "uint256"},
				{Name: "granteeId", Type: "uint256"},
				{Name: "grant", Type: "string"},
				{Name: "fileIds", Type: "uint256[]"},
			},
		},
		PrimaryType: PrimaryTypePermission,
		Domain: apitypes.TypedDataDomain{
			Name:              DomainName,
			Version:           DomainVersion,
			ChainId:           math.NewHexOrDecimal256(chainId),
			VerifyingContract: ethcommon.HexToAddress(contractAddress).Hex(),
		},
		Message: apitypes.TypedDataMessage{
			"nonce":     permission.Nonce.String(),
			"granteeId": permission.GranteeId.String(),
			"grant":     permission.Grant,
			"fileIds":   fileIds,
		},
	}
}
