package cmd

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	svc "github.com/judwhite/go-svc"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"tool-permission/config"
	"tool-permission/handler"
	"tool-permission/log"
	"tool-permission/model"
	"tool-permission/router"
	"tool-permission/utils/aws_s3"
	"tool-permission/utils/chain"
	"tool-permission/utils/eip712_sign"
	"tool-permission/utils/gtimer"
	"tool-permission/utils/wallet"
	"tool-permission/utils/workpool"
	"tool-permission/utils/wrapper"
	"tool-permission/uuid"
)

type Application struct {
	wrapper    wrapper.Wrapper
	ginEngine  *gin.Engine
	httpServer *http.Server
	cron       *cron.Cron
	pool       *workpool.Pool
}

var cfgFile *string

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "start the api",
	Long: `usage example:
	server(.exe) start -c config.json
	start the api`,
	Run: func(cmd *cobra.Command, args []string) {
		app := &Application{}
		if err := svc.Run(app, syscall.SIGINT, syscall.SIGTERM); err != nil {
			fmt.Println(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
	cfgFile = startCmd.Flags().StringP("config", "c", "", "api config file (required)")
	startCmd.MarkFlagRequired("config")
}

func (app *Application) Init(env svc.Environment) error {
	cfg, err := config.Init(cfgFile)
	if err != nil {
		return err
	}
	err = log.Init(&cfg.Logger)
	if err != nil {
		return err
	}
	// mysql
	if err = model.Init(&cfg.Mysql); err != nil {
		return err
	}

	// 签名私钥：配置优先，否则读 DEPLOYER_PRIVATE_KEY，缺失直接启动失败
	var privateKey *ecdsa.PrivateKey
	if cfg.Signer.PrivateKey != "" {
		privateKey, err = wallet.FromHex(cfg.Signer.PrivateKey)
	} else {
		privateKey, err = wallet.FromEnv()
	}
	if err != nil {
		return err
	}
	signer := eip712_sign.NewSigner(privateKey, cfg.Chain.ChainId)
	log.Log.Info("signer address->", signer.Address().Hex())

	if err = uuid.InitNode(1); err != nil {
		return err
	}

	if cfg.S3.Bucket != "" {
		if err = aws_s3.Init(cfg.S3.AccessKey, cfg.S3.SecretKey, cfg.S3.Bucket, cfg.S3.BaseUrl); err != nil {
			return err
		}
	}

	// rpc 只做诊断，连不上不阻塞启动
	if cfg.Chain.RpcUrl != "" {
		if err := chain.Init(cfg.Chain.RpcUrl); err != nil {
			log.Log.WithAlarm().Error("chain rpc init:", err)
		}
	}

	app.pool = workpool.New(4)
	handler.Init(signer, app.pool)

	// http
	app.ginEngine = router.InitPermissionRouter(&cfg)
	return nil
}

func (app *Application) Start() error {
	fmt.Println("start begin")
	app.wrapper.Wrap(func() {
		cfg := config.GetConfig().Server
		app.httpServer = &http.Server{
			Handler:        app.ginEngine,
			Addr:           cfg.ListenAddr,
			ReadTimeout:    cfg.ReadTimeout * time.Second,
			WriteTimeout:   cfg.WriteTimeout * time.Second,
			IdleTimeout:    cfg.IdleTimeout * time.Second,
			MaxHeaderBytes: cfg.MaxHeaderBytes,
		}
		log.Log.Info("Listen on->", cfg.ListenAddr)

		if err := app.httpServer.ListenAndServe(); err != nil {
			fmt.Println(err)
		}
	})
	fmt.Println("start end")

	// 网络心跳：定期打印链 ID 和 gas price
	gtimer.SetInterval(10*time.Minute, context.Background(), chain.LogNetworkInfo)

	// 每日签发量统计
	app.cron = cron.New()
	_, _ = app.cron.AddFunc("@daily", func() {
		total, err := model.CountPermissionSince(time.Now().AddDate(0, 0, -1))
		if err != nil {
			log.Log.Error("daily permission stat:", err)
			return
		}
		log.Log.Infof("permissions signed in last 24h: %d", total)
	})
	app.cron.Start()

	// 服务内存和cpu使用监控
	go func() {
		ip := fmt.Sprintf("localhost:%d", 28001)
		if err := http.ListenAndServe(ip, nil); err != nil {
			fmt.Printf("start pprof failed on %s\n", ip)
			os.Exit(1)
		}
	}()

	return nil
}

func (app *Application) Stop() error {
	fmt.Println("done begin")
	if app.httpServer != nil {
		if err := app.httpServer.Shutdown(context.Background()); err != nil {
			fmt.Printf("http shutdown error:%v\n", err)
		}
		fmt.Println("http shutdown")
	}
	if app.cron != nil {
		app.cron.Stop()
	}
	gtimer.StopAll()
	if app.pool != nil {
		app.pool.Shutdown()
	}
	app.wrapper.Wait()
	fmt.Println("done end")
	return nil
}
