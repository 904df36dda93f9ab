package wallet

import (
	"os"
	"testing"
)

const (
	testKey     = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	testAddress = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

func TestFromEnv(t *testing.T) {
	old, had := os.LookupEnv(EnvDeployerPrivateKey)
	defer func() {
		if had {
			os.Setenv(EnvDeployerPrivateKey, old)
		} else {
			os.Unsetenv(EnvDeployerPrivateKey)
		}
	}()

	os.Unsetenv(EnvDeployerPrivateKey)
	if _, err := FromEnv(); err == nil {
		t.Error("unset env should fail before anything else runs")
	}

	os.Setenv(EnvDeployerPrivateKey, testKey)
	privateKey, err := FromEnv()
	if err != nil {
		t.Fatal(err)
	}
	if Address(privateKey).Hex() != testAddress {
		t.Errorf("address = %s, want %s", Address(privateKey).Hex(), testAddress)
	}

	os.Setenv(EnvDeployerPrivateKey, "not-a-key")
	if _, err := FromEnv(); err == nil {
		t.Error("malformed key should fail")
	}
}

func TestFromHex(t *testing.T) {
	// 带不带 0x 前缀都能解析
	if _, err := FromHex(testKey); err != nil {
		t.Error(err)
	}
	if _, err := FromHex(testKey[2:]); err != nil {
		t.Error(err)
	}
}
