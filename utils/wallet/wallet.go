package wallet

import (
	"crypto/ecdsa"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

const EnvDeployerPrivateKey = "DEPLOYER_PRIVATE_KEY"

// FromEnv 从环境变量加载签名私钥，未配置直接报错，服务启动阶段即失败
func FromEnv() (*ecdsa.PrivateKey, error) {
	raw := os.Getenv(EnvDeployerPrivateKey)
	if raw == "" {
		return nil, fmt.Errorf("required environment variable %s is not set", EnvDeployerPrivateKey)
	}
	privateKey, err := FromHex(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", EnvDeployerPrivateKey, err)
	}
	return privateKey, nil
}

func FromHex(raw string) (*ecdsa.PrivateKey, error) {
	return crypto.HexToECDSA(strings.TrimPrefix(raw, "0x"))
}

func Address(privateKey *ecdsa.PrivateKey) common.Address {
	return crypto.PubkeyToAddress(privateKey.PublicKey)
}
