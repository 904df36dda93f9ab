package chain

import (
	"context"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"

	"tool-permission/log"
	"tool-permission/utils"
)

var (
	once   sync.Once
	client *ethclient.Client
)

// Init 连接 JSON-RPC 节点，只用于诊断日志，连不上不影响签名
func Init(rpcUrl string) error {
	var err error
	once.Do(func() {
		client, err = ethclient.Dial(rpcUrl)
	})
	return err
}

func Client() *ethclient.Client {
	return client
}

func ChainId(ctx context.Context) (*big.Int, error) {
	return client.ChainID(ctx)
}

// LogNetworkInfo 打印链 ID 和当前建议 gas price（gwei）
func LogNetworkInfo() {
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	chainId, err := client.ChainID(ctx)
	if err != nil {
		log.Log.Error("chain id query:", err)
		return
	}
	gasPrice, err := client.SuggestGasPrice(ctx)
	if err != nil {
		log.Log.Error("gas price query:", err)
		return
	}
	log.Log.Infof("network chainId:%s gasPrice:%s gwei", chainId.String(), utils.ToDecimal(gasPrice, 9).String())
}
