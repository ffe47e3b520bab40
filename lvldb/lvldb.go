// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package lvldb

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
)

// LVLDB opens the database per operation so several CLI invocations can share one path.
// leveldb locks the directory while open, so operations within a process are serialized.
type LVLDB struct {
	path string
	lock sync.Mutex
}

func NewLvlDB(path string) (*LVLDB, error) {
	if path == "" {
		return nil, errors.New("levelDB path can not be empty")
	}
	return &LVLDB{path: path}, nil
}

func (db *LVLDB) GetByKey(key []byte) ([]byte, error) {
	db.lock.Lock()
	defer db.lock.Unlock()

	d, err := db.openFile()
	if err != nil {
		return nil, err
	}
	defer d.Close()

	return d.Get(key, nil)
}

func (db *LVLDB) SetByKey(key []byte, value []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()

	d, err := db.openFile()
	if err != nil {
		return err
	}
	defer d.Close()

	return d.Put(key, value, nil)
}

func (db *LVLDB) openFile() (*leveldb.DB, error) {
	ldb, err := leveldb.OpenFile(db.path, nil)
	if err != nil {
		return nil, errors.Wrap(err, "levelDB.OpenFile fail")
	}
	return ldb, nil
}
