package types

type (
	ReqPage struct {
		Page  int `form:"page" json:"page" binding:"required,gte=1"`
		Limit int `form:"limit" json:"limit" binding:"required,gte=1,lte=100"`
	}

	// 数值字段用十进制字符串承载，避免 256 位 ID 在 json number 中溢出
	ReqSignPermission struct {
		GranteeId       string   `json:"granteeId" binding:"required"`
		Grant           string   `json:"grant" binding:"required"`
		FileIds         []string `json:"fileIds"`
		ContractAddress string   `json:"contractAddress" binding:"required"`
		Nonce           *string  `json:"nonce"`
	}

	ReqVerifyPermission struct {
		GranteeId       string   `json:"granteeId" binding:"required"`
		Grant           string   `json:"grant" binding:"required"`
		FileIds         []string `json:"fileIds"`
		ContractAddress string   `json:"contractAddress" binding:"required"`
		Nonce           string   `json:"nonce" binding:"required"`
		Address         string   `json:"address" binding:"required"`
		Signature       string   `json:"signature" binding:"required"`
	}
)
