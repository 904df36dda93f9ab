package model

import (
	"time"
)

// Permission 已签发的授权记录，file_ids 为十进制 ID 的 json 数组
type Permission struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	GranteeId string    `gorm:"column:grantee_id" json:"grantee_id"`
	Nonce     uint64    `gorm:"column:nonce" json:"nonce"`
	Grant     string    `gorm:"column:grant_url" json:"grant"`
	FileIds   string    `gorm:"column:file_ids" json:"file_ids"`
	Contract  string    `gorm:"column:contract" json:"contract"`
	ChainId   int64     `gorm:"column:chain_id" json:"chain_id"`
	Signer    string    `gorm:"column:signer" json:"signer"`
	Signature string    `gorm:"column:signature" json:"signature"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Permission) TableName() string {
	return "permission"
}

func CreatePermission(p *Permission) error {
	return db.Model(&Permission{}).Create(p).Error
}

// NextNonce 同一 grantee 在同一合约下的 nonce 单调递增
func NextNonce(granteeId, contract string) (uint64, error) {
	var nonce uint64
	err := db.Model(&Permission{}).
		Where("grantee_id = ? and contract = ?", granteeId, contract).
		Select("COALESCE(MAX(nonce)+1, 0)").
		Scan(&nonce).Error
	return nonce, err
}

func FindPermissionPage(page, limit int, granteeId, contract string) ([]Permission, int64, error) {
	query := db.Model(&Permission{})
	if granteeId != "" {
		query = query.Where("grantee_id = ?", granteeId)
	}
	if contract != "" {
		query = query.Where("contract = ?", contract)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []Permission
	err := query.Order("id desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rows).Error
	return rows, total, err
}

func FindPermissionSince(begin time.Time) ([]Permission, error) {
	var rows []Permission
	err := db.Model(&Permission{}).
		Where("created_at >= ?", begin).
		Order("id asc").
		Find(&rows).Error
	return rows, err
}

func CountPermissionSince(begin time.Time) (int64, error) {
	var total int64
	err := db.Model(&Permission{}).
		Where("created_at >= ?", begin).
		Count(&total).Error
	return total, err
}
