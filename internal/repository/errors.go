package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

var (
	// ErrNotFound 没有匹配的记录
	ErrNotFound = errors.New("movie not found")
	// ErrInvalidInput 输入无法写入（校验类错误）
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnknownGenre 请求中的类型名称不存在
	ErrUnknownGenre = fmt.Errorf("%w: unknown genre", ErrInvalidInput)
	// ErrUnimplemented 该存储后端尚未实现
	ErrUnimplemented = errors.New("storage backend not implemented")
)

// StorageError 存储层故障（连接、约束等），Op 为出错的操作名
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error in %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// wrapErr 把底层错误归类：已归类的原样返回，外键/唯一/检查约束视为输入错误
func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrUnimplemented) {
		return err
	}
	var storageErr *StorageError
	if errors.As(err, &storageErr) {
		return err
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Class() {
		case "23", "22": // integrity_constraint_violation, data_exception
			return fmt.Errorf("%w: %s: %s", ErrInvalidInput, op, pqErr.Message)
		}
	}

	return &StorageError{Op: op, Err: err}
}
