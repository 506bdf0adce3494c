/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package store

import (
	"github.com/asgardeo/authtree/internal/system/database/model"
)

var (
	// QueryCreateFlowSnapshot is the query to create a new flow snapshot.
	QueryCreateFlowSnapshot = model.DBQuery{
		ID: "ATQ-FLOW_SNAPSHOT-01",
		Query: "INSERT INTO FLOW_SNAPSHOT (FLOW_ID, REALM, TREE_NAME, CURRENT_NODE_ID, EXECUTION_STATE, " +
			"SECURE_STATE, SUSPENSION_ID, EXPIRES_AT) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)",
	}

	// QueryGetFlowSnapshot is the query to get a flow snapshot.
	QueryGetFlowSnapshot = model.DBQuery{
		ID: "ATQ-FLOW_SNAPSHOT-02",
		Query: "SELECT FLOW_ID, REALM, TREE_NAME, CURRENT_NODE_ID, EXECUTION_STATE, SECURE_STATE, " +
			"SUSPENSION_ID, EXPIRES_AT FROM FLOW_SNAPSHOT WHERE FLOW_ID = $1",
	}

	// QueryUpdateFlowSnapshot is the query to update a flow snapshot.
	QueryUpdateFlowSnapshot = model.DBQuery{
		ID: "ATQ-FLOW_SNAPSHOT-03",
		Query: "UPDATE FLOW_SNAPSHOT SET CURRENT_NODE_ID = $2, EXECUTION_STATE = $3, SECURE_STATE = $4, " +
			"SUSPENSION_ID = $5, EXPIRES_AT = $6, UPDATED_AT = CURRENT_TIMESTAMP WHERE FLOW_ID = $1",
	}

	// QueryDeleteFlowSnapshot is the query to delete a flow snapshot.
	QueryDeleteFlowSnapshot = model.DBQuery{
		ID:    "ATQ-FLOW_SNAPSHOT-04",
		Query: "DELETE FROM FLOW_SNAPSHOT WHERE FLOW_ID = $1",
	}

	// QueryDeleteExpiredFlowSnapshots is the query to delete the flow snapshots that expired before a time.
	QueryDeleteExpiredFlowSnapshots = model.DBQuery{
		ID:    "ATQ-FLOW_SNAPSHOT-05",
		Query: "DELETE FROM FLOW_SNAPSHOT WHERE EXPIRES_AT < $1",
	}
)
