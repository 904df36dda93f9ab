package gtimer

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"time"
)

type JobFunc = func()

var gCtx, gCancel = context.WithCancel(context.Background())

// SetInterval 周期执行 job，ctx 取消或 StopAll 后退出
func SetInterval(interval time.Duration, ctx context.Context, job JobFunc) {
	var j = jobIm{
		quit:     0,
		interval: interval,
		ctx:      ctx,
		job:      job,
	}
	j.run()
}

// StopAll 只是触发停止，并未等待任务退出
func StopAll() {
	gCancel()
}

type jobIm struct {
	quit     int32
	interval time.Duration
	ctx      context.Context
	job      JobFunc
}

func (j *jobIm) run() {
	go func() {
		for !j.isQuit() {
			j.wrapperJob()
		}
	}()
}

func (j *jobIm) isQuit() bool {
	return atomic.LoadInt32(&j.quit) > 0
}

func (j *jobIm) normalQuit() {
	atomic.StoreInt32(&j.quit, 1)
}

func (j *jobIm) wrapperJob() {
	t := time.NewTicker(j.interval)
	defer func() {
		t.Stop()
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "gtimer run job panic recover.err:%v", err)
		}
	}()
	for {
		select {
		case <-gCtx.Done():
			j.normalQuit()
			return
		case <-j.ctx.Done():
			j.normalQuit()
			return
		case <-t.C:
			j.job()
		}
	}
}
