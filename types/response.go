package types

type (
	PageResult struct {
		Page  int         `json:"page"`
		Limit int         `json:"limit"`
		Items interface{} `json:"items"`
		Total int64       `json:"total"`
	}

	SignPermissionResult struct {
		Nonce     string `json:"nonce"`
		Signature string `json:"signature"`
		R         string `json:"r"`
		S         string `json:"s"`
		V         uint8  `json:"v"`
		Signer    string `json:"signer"`
	}

	VerifyPermissionResult struct {
		Valid bool `json:"valid"`
	}

	UploadGrantResult struct {
		Grant string `json:"grant"`
	}
)
