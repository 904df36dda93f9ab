package handler

import (
	"fmt"
	"path"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"tool-permission/model"
	"tool-permission/utils"
	"tool-permission/utils/render"
)

// ExportPermissionRecord 导出最近 N 天签发的授权记录
func ExportPermissionRecord(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))
	if days <= 0 {
		days = 30
	}
	begin := time.Now().AddDate(0, 0, -days)

	rows, err := model.FindPermissionSince(begin)
	if err != nil {
		render.Json(c, render.Failed, err.Error())
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "permissions"
	_ = f.SetSheetName("Sheet1", sheetName)

	tableRecords := [][]interface{}{
		{fmt.Sprintf("Permission signatures since %s (%d rows)", utils.FormatDate(begin), len(rows))},
		{"ID", "Grantee", "Nonce", "Grant", "FileIds", "Contract", "ChainId", "Signer", "Signature", "SignedAt"},
	}
	for _, row := range rows {
		tableRecords = append(tableRecords, []interface{}{
			strconv.FormatInt(row.ID, 10),
			row.GranteeId,
			row.Nonce,
			row.Grant,
			row.FileIds,
			row.Contract,
			row.ChainId,
			row.Signer,
			row.Signature,
			utils.FormatTime(row.CreatedAt),
		})
	}

	for i, obj := range tableRecords {
		name, _ := excelize.JoinCellName("A", i+1)
		_ = f.SetSheetRow(sheetName, name, &obj)
	}

	// 标题跨全部数据列
	titleCel, _ := excelize.CoordinatesToCellName(len(tableRecords[1]), 1)
	_ = f.MergeCell(sheetName, "A1", titleCel)

	_ = f.SetColWidth(sheetName, "A", "A", 22)
	_ = f.SetColWidth(sheetName, "B", "C", 12)
	_ = f.SetColWidth(sheetName, "D", "F", 40)
	_ = f.SetColWidth(sheetName, "G", "G", 10)
	_ = f.SetColWidth(sheetName, "H", "I", 44)
	_ = f.SetColWidth(sheetName, "J", "J", 20)

	filePath := "./permission_record.xlsx"
	if err := f.SaveAs(filePath); err != nil {
		render.Json(c, render.Failed, err)
		return
	}

	fileName := path.Base(filePath)
	c.Header("Content-Type", "application/octet-stream")
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	c.Header("Content-Transfer-Encoding", "binary")
	c.Header("Cache-Control", "no-cache")
	c.File(filePath)
}
