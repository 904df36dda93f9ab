package utils

import (
	"crypto/md5"
	"encoding/hex"
	"math/big"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
)

var addressReg = regexp.MustCompile("^0x[0-9a-fA-F]{40}$")

func IsValidAddress(iaddress interface{}) bool {
	switch v := iaddress.(type) {
	case string:
		return addressReg.MatchString(v)
	case common.Address:
		return addressReg.MatchString(v.Hex())
	default:
		return false
	}
}

// SigRSV 拆出签名的 r、s、v 三个分量，v 归一化为 27/28
func SigRSV(isig interface{}) ([32]byte, [32]byte, uint8) {
	var sig []byte
	switch v := isig.(type) {
	case []byte:
		sig = v
	case string:
		sig, _ = hexutil.Decode(v)
	}

	sigstr := common.Bytes2Hex(sig)
	R := [32]byte{}
	S := [32]byte{}
	copy(R[:], common.FromHex(sigstr[0:64]))
	copy(S[:], common.FromHex(sigstr[64:128]))
	vI, _ := strconv.ParseUint(sigstr[128:130], 16, 8)
	V := uint8(vI)
	if V < 27 {
		V += 27
	}

	return R, S, V
}

func ToDecimal(ivalue interface{}, decimals int) decimal.Decimal {
	value := new(big.Int)
	switch v := ivalue.(type) {
	case string:
		value.SetString(v, 10)
	case *big.Int:
		value = v
	}

	mul := decimal.NewFromFloat(float64(10)).Pow(decimal.NewFromFloat(float64(decimals)))
	num, _ := decimal.NewFromString(value.String())
	result := num.Div(mul)

	return result
}

// ToWei decimals to wei
func ToWei(iamount interface{}, decimals int) *big.Int {
	amount := decimal.NewFromFloat(0)
	switch v := iamount.(type) {
	case string:
		amount, _ = decimal.NewFromString(v)
	case float64:
		amount = decimal.NewFromFloat(v)
	case int64:
		amount = decimal.NewFromFloat(float64(v))
	case decimal.Decimal:
		amount = v
	case *decimal.Decimal:
		amount = *v
	}

	mul := decimal.NewFromFloat(float64(10)).Pow(decimal.NewFromFloat(float64(decimals)))
	result := amount.Mul(mul)

	wei := new(big.Int)
	wei.SetString(result.String(), 10)

	return wei
}

func Md5(s string) string {
	h := md5.New()
	h.Write([]byte(s))
	return strings.ToLower(hex.EncodeToString(h.Sum(nil)))
}

func UUID() string {
	result, _ := uuid.NewV4()
	return result.String()
}

func GetPageParams(c *gin.Context) (int, int) {
	pageNo, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	return pageNo, pageSize
}

func GetClientIP(request *http.Request) string {
	var ip string
	ipStr := request.Header.Get("X-Forwarded-For")
	ipArr := strings.Split(ipStr, ",")
	ip = ipArr[0]
	if strings.Contains(ip, "127.0.0.1") || ip == "" {
		ipStr1 := request.Header.Get("X-real-ip")
		ipArr1 := strings.Split(ipStr1, ",")
		ip = ipArr1[0]
	}
	if ip == "" {
		ip = "127.0.0.1"
	}
	return ip
}

func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func FormatTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}
