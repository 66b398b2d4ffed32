package model

import (
	"encoding/gob"
	"io"
	"os"

	"github.com/YuminosukeSato/glmnetcv/pkg/errors"
)

// SaveModel はモデルをgob形式でファイルに保存する
//
// 使用例:
//
//	path, _ := model.NewLogisticPath(a0, beta, lambda)
//	err := model.SaveModel(path, "fold0.gob")
func SaveModel(m interface{}, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "failed to create file")
	}
	defer file.Close()

	return SaveModelToWriter(m, file)
}

// LoadModel はファイルからモデルを読み込む（m はポインタ）
func LoadModel(m interface{}, filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return errors.Wrap(err, "failed to open file")
	}
	defer file.Close()

	return LoadModelFromReader(m, file)
}

// SaveModelToWriter はモデルをio.Writerに保存する
func SaveModelToWriter(m interface{}, w io.Writer) error {
	if err := gob.NewEncoder(w).Encode(m); err != nil {
		return errors.Wrap(err, "failed to encode model")
	}
	return nil
}

// LoadModelFromReader はio.Readerからモデルを読み込む
func LoadModelFromReader(m interface{}, r io.Reader) error {
	if err := gob.NewDecoder(r).Decode(m); err != nil {
		return errors.Wrap(err, "failed to decode model")
	}
	return nil
}

// LoadLogisticPath はファイルからLogisticPathを読み込み、形状を検証する
func LoadLogisticPath(filename string) (*LogisticPath, error) {
	p := &LogisticPath{}
	if err := LoadModel(p, filename); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid model in %s", filename)
	}
	return p, nil
}
