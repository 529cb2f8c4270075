package stor

import (
	"os"
	"strconv"

	"gorm.io/gorm"
)

var txRetry int

func getTxRetry() int {
	if txRetry != 0 {
		return txRetry
	}

	retryCount64, err := strconv.ParseInt(os.Getenv("TX_RETRY"), 10, 32)
	if err != nil || retryCount64 < 3 {
		retryCount64 = 3
	}

	txRetry = int(retryCount64)

	return txRetry
}

func WithTxRetry(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	var err error

	retryCount := getTxRetry()

	for i := 0; i < retryCount; i++ {
		err = db.Transaction(fn)
		if err == nil {
			break
		}
	}

	return err
}
