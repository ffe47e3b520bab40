// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package lvldb_test

import (
	"testing"

	"github.com/ChainSafe/xcm-locator/lvldb"
	"github.com/stretchr/testify/suite"
	"github.com/syndtr/goleveldb/leveldb"
)

type LVLDBTestSuite struct {
	suite.Suite
	db *lvldb.LVLDB
}

func TestRunLVLDBTestSuite(t *testing.T) {
	suite.Run(t, new(LVLDBTestSuite))
}

func (s *LVLDBTestSuite) SetupTest() {
	db, err := lvldb.NewLvlDB(s.T().TempDir())
	s.Nil(err)
	s.db = db
}

func (s *LVLDBTestSuite) Test_EmptyPath() {
	_, err := lvldb.NewLvlDB("")

	s.NotNil(err)
}

func (s *LVLDBTestSuite) Test_GetMissingKey() {
	_, err := s.db.GetByKey([]byte("missing"))

	s.ErrorIs(err, leveldb.ErrNotFound)
}

func (s *LVLDBTestSuite) Test_SetAndGet() {
	err := s.db.SetByKey([]byte("key"), []byte("value"))
	s.Nil(err)

	value, err := s.db.GetByKey([]byte("key"))

	s.Nil(err)
	s.Equal([]byte("value"), value)
}
