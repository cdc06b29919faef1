package snowflake

import (
	"errors"
	"sync"

	"github.com/bwmarrin/snowflake"

	"github.com/turi333-pixel/MoodFlow/config"
)

var (
	node *snowflake.Node
	once sync.Once

	errInvalidMachineID   = errors.New("invalid snowflake machine id")
	errGeneratorUninitial = errors.New("snowflake generator is not initialized")
)

func Init() error {
	var initErr error

	once.Do(func() {
		machineID := config.Cfg.SnowflakeMachineID
		dataCenterID := config.Cfg.SnowflakeDataCenter

		if machineID < 0 || machineID > 31 {
			initErr = errInvalidMachineID
			return
		}
		nodeID := (dataCenterID << 5) | machineID // datacenterID 和 machineID 都是 0~31

		var err error
		node, err = snowflake.NewNode(nodeID)

		if err != nil {
			initErr = err
			return
		}
	})

	return initErr
}

// NextID 生成条目 ID，对外是不透明字符串。
func NextID() (string, error) {
	if node == nil {
		return "", errGeneratorUninitial
	}

	return node.Generate().String(), nil
}
