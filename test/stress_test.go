//go:build stress

package test

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gostonefire/memhashmap"
	"github.com/gostonefire/memhashmap/crt"
	"github.com/gostonefire/memhashmap/internal/utils"
)

func bytesToStrings(d []byte) []string {
	r := make([]string, len(d))
	for i, v := range d {
		r[i] = strconv.Itoa(int(v))
	}
	return r
}

func stringsToBytes(d []string) ([]byte, error) {
	r := make([]byte, len(d))
	for i, v := range d {
		b, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		r[i] = uint8(b)
	}
	return r, nil
}

func createAndStoreTestdata(amount int, fileName string) error {
	data := make([]byte, 30)

	f, err := os.OpenFile(fileName, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer func(f *os.File) { _ = f.Close() }(f)

	for i := 0; i < amount; i++ {
		rand.Read(data)
		line := strings.Join(bytesToStrings(data), ",")
		_, err = fmt.Fprintln(f, line)
		if err != nil {
			return err
		}
	}

	return nil
}

func setTestdata(fileName string, mhm *memhashmap.MemHashMap) error {
	f, err := os.OpenFile(fileName, os.O_RDONLY, 0644)
	if err != nil {
		return err
	}
	defer func(f *os.File) { _ = f.Close() }(f)

	var line string
	fr := bufio.NewReader(f)

	for {
		line, err = fr.ReadString('\n')
		if errors.Is(err, io.EOF) {
			break
		}
		line = strings.TrimRight(line, "\n\r")
		data, err := stringsToBytes(strings.Split(line, ","))
		if err != nil {
			return err
		}
		err = mhm.Set(data[:20], data[20:])
		if err != nil {
			return err
		}
	}

	return nil
}

func popTestdata(fileName string, mhm *memhashmap.MemHashMap) error {
	f, err := os.OpenFile(fileName, os.O_RDONLY, 0644)
	if err != nil {
		return err
	}
	defer func(f *os.File) { _ = f.Close() }(f)

	var line string
	var value []byte
	fr := bufio.NewReader(f)

	for {
		line, err = fr.ReadString('\n')
		if errors.Is(err, io.EOF) {
			break
		}
		line = strings.TrimRight(line, "\n\r")
		data, err := stringsToBytes(strings.Split(line, ","))
		if err != nil {
			return err
		}
		value, err = mhm.Pop(data[:20])
		if err != nil {
			return err
		}
		if !utils.IsEqual(value, data[20:]) {
			return fmt.Errorf("popped wrong value")
		}
	}

	return nil
}

func getTestdata(fileName string, mhm *memhashmap.MemHashMap, shouldNotExist bool) error {
	f, err := os.OpenFile(fileName, os.O_RDONLY, 0644)
	if err != nil {
		return err
	}
	defer func(f *os.File) { _ = f.Close() }(f)

	var line string
	var value []byte
	fr := bufio.NewReader(f)

	for {
		line, err = fr.ReadString('\n')
		if errors.Is(err, io.EOF) {
			break
		}
		line = strings.TrimRight(line, "\n\r")
		data, err := stringsToBytes(strings.Split(line, ","))
		if err != nil {
			return err
		}
		value, err = mhm.Get(data[:20])
		if shouldNotExist {
			if err == nil {
				return fmt.Errorf("get should not get data")
			} else if !errors.Is(err, crt.NoRecordFound{}) {
				return err
			}
		} else {
			if err != nil {
				return err
			}
			if !utils.IsEqual(value, data[20:]) {
				return fmt.Errorf("got wrong value")
			}
		}
	}

	return nil
}

type TestCaseStressTest struct {
	caseName  string
	buckets   int64
	nTestdata int64
}

func TestStress(t *testing.T) {
	t.Run("stress tests for pre-sized and growing maps", func(t *testing.T) {
		// Prepare
		tests := []TestCaseStressTest{
			{caseName: "PreSized", buckets: 1000000, nTestdata: 1000000},
			{caseName: "GrownFromDefault", buckets: 0, nTestdata: 1000000},
		}

		for _, test := range tests {
			t.Run(fmt.Sprintf("handles lots of stress and reorgs for %s", test.caseName), func(t *testing.T) {
				// Prepare test data
				rand.Seed(123)
				err := createAndStoreTestdata(int(test.nTestdata), "testdata_1.txt")
				assert.NoError(t, err, "create testdata 1")
				err = createAndStoreTestdata(int(test.nTestdata), "testdata_2.txt")
				assert.NoError(t, err, "create testdata 2")
				err = createAndStoreTestdata(int(test.nTestdata), "testdata_3.txt")
				assert.NoError(t, err, "create testdata 3")

				// Prepare mem hash map
				var mhm *memhashmap.MemHashMap

				mhm, _, err = memhashmap.NewMemHashMap(test.buckets, 0, nil)
				assert.NoError(t, err, "create mem hash map")

				// Set first two sets of test data
				err = setTestdata("testdata_1.txt", mhm)
				assert.NoError(t, err, "set test set 1")
				err = setTestdata("testdata_2.txt", mhm)
				assert.NoError(t, err, "set test set 2")

				// Remove first set from the hash map
				err = popTestdata("testdata_1.txt", mhm)
				assert.NoError(t, err, "pop test set 1")

				// Set third set of test data
				err = setTestdata("testdata_3.txt", mhm)
				assert.NoError(t, err, "set test set 3")

				// Check all three test sets
				err = getTestdata("testdata_1.txt", mhm, true)
				assert.NoError(t, err, "get test set 1, should not exist")
				err = getTestdata("testdata_2.txt", mhm, false)
				assert.NoError(t, err, "get test set 2")
				err = getTestdata("testdata_3.txt", mhm, false)
				assert.NoError(t, err, "get test set 3")

				// Remove second set from the hash map
				err = popTestdata("testdata_2.txt", mhm)
				assert.NoError(t, err, "pop test set 2")

				// Check all three test sets
				err = getTestdata("testdata_1.txt", mhm, true)
				assert.NoError(t, err, "get test set 1, should not exist")
				err = getTestdata("testdata_2.txt", mhm, true)
				assert.NoError(t, err, "get test set 2, should not exist")
				err = getTestdata("testdata_3.txt", mhm, false)
				assert.NoError(t, err, "get test set 3")

				// Get stats
				var stat1, stat2 *memhashmap.HashMapStat
				stat1, err = mhm.Stat(false)
				assert.NoError(t, err, "get stat 1")

				assert.Equal(t, test.nTestdata, stat1.Records, "correct number of records, pre-reorg")

				// Reorganize to a snug bucket count after the heavy deleting
				reorgConf := memhashmap.ReorgConf{NumberOfBuckets: 2 * test.nTestdata}
				_, _, err = mhm.Reorg(reorgConf, true)
				assert.NoError(t, err, "reorg map")

				// Get stats
				stat2, err = mhm.Stat(false)
				assert.NoError(t, err, "get stat 2")

				assert.Equal(t, test.nTestdata, stat2.Records, "correct number of records, post-reorg")

				err = getTestdata("testdata_3.txt", mhm, false)
				assert.NoError(t, err, "get test set 3, post-reorg")

				// Clean up
				mhm.Close()

				err = os.Remove("testdata_1.txt")
				assert.NoError(t, err, "remove testdata 1")
				err = os.Remove("testdata_2.txt")
				assert.NoError(t, err, "remove testdata 2")
				err = os.Remove("testdata_3.txt")
				assert.NoError(t, err, "remove testdata 3")
			})
		}
	})
}
