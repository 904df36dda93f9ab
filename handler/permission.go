package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gin-gonic/gin"

	"tool-permission/model"
	"tool-permission/types"
	"tool-permission/utils"
	"tool-permission/utils/eip712_sign"
	"tool-permission/utils/render"
	"tool-permission/uuid"
)

type auditWork struct {
	record *model.Permission
}

func (w *auditWork) Task() error {
	return model.CreatePermission(w.record)
}

func SignPermission(c *gin.Context) {
	var req types.ReqSignPermission
	if err := c.ShouldBindJSON(&req); err != nil {
		render.Json(c, render.ErrParams, err.Error())
		return
	}
	if !utils.IsValidAddress(req.ContractAddress) {
		render.Json(c, render.ErrParams, "invalid contract address")
		return
	}

	// 未指定 nonce 时按 grantee+合约 自动分配
	var nonceStr string
	if req.Nonce != nil {
		nonceStr = *req.Nonce
	} else {
		nonce, err := model.NextNonce(req.GranteeId, req.ContractAddress)
		if err != nil {
			render.Json(c, render.Failed, err.Error())
			return
		}
		nonceStr = strconv.FormatUint(nonce, 10)
	}

	permission, err := buildPermissionData(nonceStr, req.GranteeId, req.Grant, req.FileIds)
	if err != nil {
		render.Json(c, render.ErrParams, err.Error())
		return
	}

	sign, err := eip712_sign.CreatePermissionSignature(permission, req.ContractAddress, permissionSigner)
	if err != nil {
		render.Json(c, render.ErrSign, err.Error())
		return
	}
	r, s, v := utils.SigRSV(sign)

	// 异步落库，签名响应不等写库
	if req.FileIds == nil {
		req.FileIds = []string{}
	}
	fileIdsJson, _ := json.Marshal(req.FileIds)
	auditPool.SubmitWork(&auditWork{record: &model.Permission{
		ID:        uuid.GenerateUUID(),
		GranteeId: req.GranteeId,
		Nonce:     permission.Nonce.Uint64(),
		Grant:     req.Grant,
		FileIds:   string(fileIdsJson),
		Contract:  req.ContractAddress,
		ChainId:   permissionSigner.ChainId(),
		Signer:    permissionSigner.Address().Hex(),
		Signature: sign,
		CreatedAt: time.Now(),
	}})

	render.Json(c, render.Ok, types.SignPermissionResult{
		Nonce:     nonceStr,
		Signature: sign,
		R:         hexutil.Encode(r[:]),
		S:         hexutil.Encode(s[:]),
		V:         v,
		Signer:    permissionSigner.Address().Hex(),
	})
}

func VerifyPermission(c *gin.Context) {
	var req types.ReqVerifyPermission
	if err := c.ShouldBindJSON(&req); err != nil {
		render.Json(c, render.ErrParams, err.Error())
		return
	}
	if !utils.IsValidAddress(req.ContractAddress) || !utils.IsValidAddress(req.Address) {
		render.Json(c, render.ErrParams, "invalid address")
		return
	}

	permission, err := buildPermissionData(req.Nonce, req.GranteeId, req.Grant, req.FileIds)
	if err != nil {
		render.Json(c, render.ErrParams, err.Error())
		return
	}

	valid, err := eip712_sign.VerifyPermissionSignature(permission, req.ContractAddress, permissionSigner.ChainId(), req.Address, req.Signature)
	if err != nil {
		render.Json(c, render.ErrSign, err.Error())
		return
	}
	render.Json(c, render.Ok, types.VerifyPermissionResult{Valid: valid})
}

func ListPermission(c *gin.Context) {
	page, limit := utils.GetPageParams(c)
	rows, total, err := model.FindPermissionPage(page, limit, c.Query("granteeId"), c.Query("contract"))
	if err != nil {
		render.Json(c, render.Failed, err.Error())
		return
	}
	render.Json(c, render.Ok, types.PageResult{
		Page:  page,
		Limit: limit,
		Items: rows,
		Total: total,
	})
}

func buildPermissionData(nonce, granteeId, grant string, fileIds []string) (*eip712_sign.PermissionData, error) {
	nonceInt, err := parseUint256("nonce", nonce)
	if err != nil {
		return nil, err
	}
	granteeInt, err := parseUint256("granteeId", granteeId)
	if err != nil {
		return nil, err
	}
	ids := make([]*big.Int, 0, len(fileIds))
	for _, s := range fileIds {
		id, err := parseUint256("fileIds", s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return &eip712_sign.PermissionData{
		Nonce:     nonceInt,
		GranteeId: granteeInt,
		Grant:     grant,
		FileIds:   ids,
	}, nil
}

func parseUint256(field, s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%s: %q is not a decimal integer", field, s)
	}
	if v.Sign() < 0 {
		return nil, errors.New(field + " must be non-negative")
	}
	if v.BitLen() > 256 {
		return nil, errors.New(field + " overflows uint256")
	}
	return v, nil
}
