// file: controllers/setup.go
package controllers

import (
	"DevOlympus/config"
	"DevOlympus/services"
	"DevOlympus/utils"
	"log"

	"github.com/gin-gonic/gin"
)

// 启动时注入一次，之后只读
var (
	appConfig config.Config
	assets    services.AssetUploader
)

func Setup(cfg config.Config, uploader services.AssetUploader) {
	appConfig = cfg
	assets = uploader
}

// respondWorkflowError 把 service 的类型化错误翻译成响应体；
// 上游错误只记日志，不把内部细节透给调用方
func respondWorkflowError(c *gin.Context, werr *services.WorkflowError) {
	if werr.Kind == services.KindUpstreamFailure && werr.Err != nil {
		log.Printf("upstream failure on %s: %v", c.FullPath(), werr.Err)
	}
	if len(werr.Fields) > 0 {
		utils.ErrorWithData(c, werr.Code, werr.Msg, gin.H{"fields": werr.Fields})
		return
	}
	utils.Error(c, werr.Code, werr.Msg)
}
